// Package packed implements the lossy exponent/mantissa packing used by the
// settlement network for transaction fees and amounts.
//
// # Format
//
// A packed value is a fixed-width bit string of ExpBits+MantissaBits bits that
// represents
//
//	value = mantissa * ExpBase^exponent
//
// On the wire the packed bytes are the big-endian encoding of
// mantissa<<ExpBits | exponent: the mantissa fills the high-order bits and the
// exponent the low-order ExpBits bits of the last byte.
//
// Two parameterizations are standardized by the network:
//
//	FeeParams:    5 exponent bits, 11 mantissa bits, base 10 (2 bytes)
//	AmountParams: 5 exponent bits, 35 mantissa bits, base 10 (5 bytes)
//
// # Encoding Pipeline
//
// IntegerToPacked searches the smallest exponent for which the mantissa fits by
// repeated truncating division, assembles the exponent bits followed by the
// mantissa bits least-significant bit first, packs that bit string into bytes
// and finally reverses the whole bit string with bitvec.ReverseBits.
// PackedToInteger reads the bytes back through bitvec.FromBytes, whose
// reversed view undoes that last step.
//
//	fee := big.NewInt(1000)
//	buf, _ := packed.IntegerToPacked(fee, packed.FeeParams) // 7d 00
//	v, _ := packed.PackedToInteger(buf, packed.FeeParams)   // 1000
//
// # Packability
//
// Packing is lossy: division discards low-order digits, so values that are not
// an exact multiple of ExpBase^exponent cannot be represented. The network only
// admits values for which pack followed by unpack reproduces the input.
// PackFeeChecked and PackAmountChecked enforce that rule, and
// ClosestPackableFee and ClosestPackableAmount round a value down to the
// nearest admissible one:
//
//	packed.ClosestPackableFee(big.NewInt(2048)) // 2040
//
// Rounding always truncates toward zero. It never rounds to the nearest value.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package packed
