// Package field encodes the fixed-width transaction fields of the settlement
// network: account ids, token ids, nonces, validity timestamps, unpacked
// amounts and 20-byte addresses.
//
// All integers are unsigned big-endian. Range checks mirror the network's
// limits so that an invalid field is rejected before it is signed.
package field

import (
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/arloliu/zkwire/endian"
	"github.com/arloliu/zkwire/errs"
)

// Encoded field widths in bytes.
const (
	AccountIDLen  = 4
	TokenIDLen    = 4
	NonceLen      = 4
	TimestampLen  = 8
	FullAmountLen = 16
	AddressLen    = 20
)

const (
	// MaxAccountID is the last index of the 2^24 account space.
	MaxAccountID = 1<<24 - 1
	// MaxTokenID is the largest token id; 2^32-1 itself is reserved.
	MaxTokenID = math.MaxUint32 - 1
)

var engine = endian.GetBigEndianEngine()

// AccountIDToBytes encodes an account id as 4 bytes.
// Ids at or above 2^24 are rejected with errs.ErrAccountNumberTooLarge.
func AccountIDToBytes(id uint32) ([]byte, error) {
	if id > MaxAccountID {
		return nil, fmt.Errorf("%w: %d exceeds %d", errs.ErrAccountNumberTooLarge, id, MaxAccountID)
	}

	return engine.AppendUint32(make([]byte, 0, AccountIDLen), id), nil
}

// TokenIDToBytes encodes a token id as 4 bytes.
// 2^32-1 is rejected with errs.ErrTokenIDTooBig.
func TokenIDToBytes(id uint32) ([]byte, error) {
	if id > MaxTokenID {
		return nil, fmt.Errorf("%w: %d exceeds %d", errs.ErrTokenIDTooBig, id, uint32(MaxTokenID))
	}

	return engine.AppendUint32(make([]byte, 0, TokenIDLen), id), nil
}

// NonceToBytes encodes a nonce as 4 bytes.
func NonceToBytes(nonce uint32) []byte {
	return engine.AppendUint32(make([]byte, 0, NonceLen), nonce)
}

// TimestampToBytes encodes a validity bound (unix seconds) as 8 bytes.
func TimestampToBytes(ts uint64) []byte {
	return engine.AppendUint64(make([]byte, 0, TimestampLen), ts)
}

// FullAmountToBytes encodes an unpacked amount as 16 bytes, left-padded with
// zeros. Withdrawals carry the full amount so no precision is lost.
//
// A nil amount is zero. Negative amounts fail with errs.ErrNegativeInteger,
// amounts wider than 128 bits with errs.ErrIntegerTooLarge.
func FullAmountToBytes(amount *big.Int) ([]byte, error) {
	if amount == nil {
		return make([]byte, FullAmountLen), nil
	}

	if amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrNegativeInteger, amount)
	}

	return padAmount(amount.Bytes(), amount.String())
}

// FullAmountU256ToBytes is FullAmountToBytes for a uint256 amount.
func FullAmountU256ToBytes(amount *uint256.Int) ([]byte, error) {
	if amount == nil {
		return make([]byte, FullAmountLen), nil
	}

	return padAmount(amount.Bytes(), amount.Dec())
}

func padAmount(minimal []byte, text string) ([]byte, error) {
	out, ok := endian.AppendPadded(make([]byte, 0, FullAmountLen), minimal, FullAmountLen)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs %d bytes, field holds %d", errs.ErrIntegerTooLarge, text, len(minimal), FullAmountLen)
	}

	return out, nil
}
