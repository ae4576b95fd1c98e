package format

type (
	AddressKind uint8
	TxType      uint8
)

const (
	AddressInvalid    AddressKind = 0x0 // AddressInvalid carries no recognized prefix.
	AddressHex        AddressKind = 0x1 // AddressHex is a "0x" prefixed account address.
	AddressPubKeyHash AddressKind = 0x2 // AddressPubKeyHash is a "sync:" prefixed public key hash.

	TxWithdraw     TxType = 0x03 // TxWithdraw moves funds back to layer 1.
	TxTransfer     TxType = 0x05 // TxTransfer moves funds between layer-2 accounts.
	TxChangePubKey TxType = 0x07 // TxChangePubKey sets the account signing key.
	TxForcedExit   TxType = 0x08 // TxForcedExit withdraws another account's funds.
)

// Textual address prefixes.
const (
	HexPrefix        = "0x"
	PubKeyHashPrefix = "sync:"
)

func (k AddressKind) String() string {
	switch k {
	case AddressHex:
		return "Hex"
	case AddressPubKeyHash:
		return "PubKeyHash"
	default:
		return "Invalid"
	}
}

// Prefix returns the textual prefix of the kind, or "" for AddressInvalid.
func (k AddressKind) Prefix() string {
	switch k {
	case AddressHex:
		return HexPrefix
	case AddressPubKeyHash:
		return PubKeyHashPrefix
	default:
		return ""
	}
}

func (t TxType) String() string {
	switch t {
	case TxWithdraw:
		return "Withdraw"
	case TxTransfer:
		return "Transfer"
	case TxChangePubKey:
		return "ChangePubKey"
	case TxForcedExit:
		return "ForcedExit"
	default:
		return "Unknown"
	}
}
