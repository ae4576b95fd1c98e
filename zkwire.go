// Package zkwire produces the canonical byte encoding of layer-2 settlement
// network transaction fields, the exact pre-image that is later signed.
//
// The network rejects any transaction whose signature does not match its
// canonical bytes, so every function here is bit-exact and fails loudly rather
// than silently adjusting its input.
//
// # Core Features
//
//   - Lossy exponent/mantissa packing of fees (2 bytes) and amounts (5 bytes)
//   - Admissibility checks and round-down helpers for packed values
//   - Fixed-width big-endian account ids, token ids, nonces and full amounts
//   - Strict 20-byte address decoding for "0x" and "sync:" prefixed strings
//
// # Basic Usage
//
//	fee, err := zkwire.ClosestPackableFee(big.NewInt(123456)) // 123400
//	buf, err := zkwire.PackFee(fee)                            // 9a 42
//
//	account, err := zkwire.AccountIDToBytes(7)                 // 00 00 00 07
//	to, err := zkwire.AddressToBytes("0xede35562d3555e61120a151b3c8e8e91d83a378a")
//
// # Package Structure
//
// This package wraps the most common operations. For full control use the
// sub-packages directly:
//
//   - bitvec: bit vector and the ReverseBits primitive
//   - packed: packing parameters and the packed codec
//   - field:  fixed-width field encoders
//   - tx:     complete transaction signing messages
//   - units:  human-readable amount formatting
//
// All functions are pure and safe for concurrent use.
package zkwire

import (
	"math/big"

	"github.com/arloliu/zkwire/field"
	"github.com/arloliu/zkwire/packed"
)

// PackFee packs fee into 2 bytes. The fee must be exactly packable.
func PackFee(fee *big.Int) ([]byte, error) {
	return packed.PackFeeChecked(fee)
}

// PackAmount packs amount into 5 bytes. The amount must be exactly packable.
func PackAmount(amount *big.Int) ([]byte, error) {
	return packed.PackAmountChecked(amount)
}

// ClosestPackableFee rounds fee down to the nearest packable fee.
func ClosestPackableFee(fee *big.Int) (*big.Int, error) {
	return packed.ClosestPackableFee(fee)
}

// ClosestPackableAmount rounds amount down to the nearest packable amount.
func ClosestPackableAmount(amount *big.Int) (*big.Int, error) {
	return packed.ClosestPackableAmount(amount)
}

// AccountIDToBytes encodes an account id as 4 big-endian bytes.
func AccountIDToBytes(id uint32) ([]byte, error) {
	return field.AccountIDToBytes(id)
}

// TokenIDToBytes encodes a token id as 4 big-endian bytes.
func TokenIDToBytes(id uint32) ([]byte, error) {
	return field.TokenIDToBytes(id)
}

// NonceToBytes encodes a nonce as 4 big-endian bytes.
func NonceToBytes(nonce uint32) []byte {
	return field.NonceToBytes(nonce)
}

// AddressToBytes decodes a "0x" or "sync:" prefixed address into 20 bytes.
func AddressToBytes(address string) ([]byte, error) {
	return field.AddressToBytes(address)
}

// FullAmountToBytes encodes an unpacked amount as 16 big-endian bytes.
func FullAmountToBytes(amount *big.Int) ([]byte, error) {
	return field.FullAmountToBytes(amount)
}
