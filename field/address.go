package field

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/arloliu/zkwire/errs"
	"github.com/arloliu/zkwire/format"
)

// ClassifyAddress identifies the textual prefix of address and returns the
// remaining hex body. Prefixes are case-sensitive. For format.AddressInvalid
// the body is the unmodified input.
func ClassifyAddress(address string) (format.AddressKind, string) {
	for _, kind := range []format.AddressKind{format.AddressHex, format.AddressPubKeyHash} {
		if body, ok := strings.CutPrefix(address, kind.Prefix()); ok {
			return kind, body
		}
	}

	return format.AddressInvalid, address
}

// AddressToBytes decodes a "0x" account address or a "sync:" public key hash
// into its 20 raw bytes.
//
// Returns errs.ErrInvalidAddress when the prefix is missing, the body is not
// valid hex, or it does not decode to exactly 20 bytes.
func AddressToBytes(address string) ([]byte, error) {
	kind, body := ClassifyAddress(address)
	if kind == format.AddressInvalid {
		return nil, fmt.Errorf("%w: %q has no %q or %q prefix",
			errs.ErrInvalidAddress, address, format.HexPrefix, format.PubKeyHashPrefix)
	}

	raw, err := hexutil.Decode(format.HexPrefix + body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", errs.ErrInvalidAddress, kind, address, err)
	}

	if len(raw) != AddressLen {
		return nil, fmt.Errorf("%w: %s %q decodes to %d bytes, want %d",
			errs.ErrInvalidAddress, kind, address, len(raw), AddressLen)
	}

	return raw, nil
}

// ParseAddress is AddressToBytes returning an Ethereum address value.
func ParseAddress(address string) (common.Address, error) {
	raw, err := AddressToBytes(address)
	if err != nil {
		return common.Address{}, err
	}

	return common.BytesToAddress(raw), nil
}
