// Package tx assembles the canonical byte messages that are signed for
// settlement network transactions.
//
// A message is the concatenation of a one-byte transaction type and the
// canonical encodings of the transaction's fields, produced by the field and
// packed packages:
//
//	Transfer:     type | account | from | to | token | packed amount | packed fee | nonce | valid from | valid until
//	Withdraw:     type | account | from | eth address | token | full amount | packed fee | nonce | valid from | valid until
//	ChangePubKey: type | account | account address | new pubkey hash | fee token | packed fee | nonce | valid from | valid until
//	ForcedExit:   type | initiator account | target | token | packed fee | nonce | valid from | valid until
//
// Amounts and fees must be exactly packable; round them first with
// packed.ClosestPackableAmount and packed.ClosestPackableFee.
//
// Signing itself is delegated to a Signer supplied by the caller:
//
//	msg := &tx.Transfer{AccountID: 7, From: from, To: to, Amount: amount, Fee: fee, Nonce: 3, TimeRange: tx.DefaultTimeRange()}
//	signed, err := tx.Sign(msg, signer)
package tx
