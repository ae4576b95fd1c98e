package packed

import (
	"fmt"
	"math/big"

	"github.com/arloliu/zkwire/bitvec"
	"github.com/arloliu/zkwire/errs"
)

// IntegerToPacked packs value into p.ByteLen() bytes.
//
// The exponent is the smallest one for which the truncated mantissa fits in
// p.MantissaBits bits; digits below ExpBase^exponent are discarded. A nil
// value is treated as zero.
//
// Parameters:
//   - value: Non-negative integer to pack
//   - p: Packing parameterization
//
// Returns:
//   - []byte: Packed bytes in network layout
//   - error: errs.ErrInvalidParams, errs.ErrNegativeInteger, or
//     errs.ErrIntegerTooLarge if value exceeds p.MaxValue()
func IntegerToPacked(value *big.Int, p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return pack(value, p, p.MaxValue())
}

// pack assumes p is valid and maxValue is p.MaxValue().
func pack(value *big.Int, p Params, maxValue *big.Int) ([]byte, error) {
	value = orZero(value)
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrNegativeInteger, value)
	}

	if value.Cmp(maxValue) > 0 {
		return nil, fmt.Errorf("%w: %s exceeds %s (%s)", errs.ErrIntegerTooLarge, value, maxValue, p)
	}

	exponent, mantissa := split(value, p)

	// exponent bits first, then mantissa bits, each least-significant first
	encoding := bitvec.New(p.Bits())
	for i := range p.ExpBits {
		if exponent>>i&1 == 1 {
			_ = encoding.Set(i)
		}
	}
	for i := range p.MantissaBits {
		if mantissa.Bit(i) == 1 {
			_ = encoding.Set(p.ExpBits + i)
		}
	}

	raw, err := encoding.BytesBigEndian()
	if err != nil {
		return nil, err
	}

	return bitvec.ReverseBits(raw), nil
}

// PackedToInteger unpacks buf, the exact inverse of IntegerToPacked.
//
// Returns errs.ErrIncorrectPackedLength if len(buf) does not match p.ByteLen().
func PackedToInteger(buf []byte, p Params) (*big.Int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return unpack(buf, p)
}

// unpack assumes p is valid.
func unpack(buf []byte, p Params) (*big.Int, error) {
	if len(buf)*8 != p.Bits() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrIncorrectPackedLength, p.ByteLen(), len(buf))
	}

	// The reversed view of FromBytes undoes the whole-string reversal applied
	// when packing: index i is bit i of the least-significant-first encoding.
	bits := bitvec.FromBytes(buf)

	exponent := int64(0)
	for i := range p.ExpBits {
		if set, _ := bits.Get(i); set {
			exponent |= 1 << i
		}
	}

	mantissa := new(big.Int)
	for i := range p.MantissaBits {
		if set, _ := bits.Get(p.ExpBits + i); set {
			mantissa.SetBit(mantissa, i, 1)
		}
	}

	scale := new(big.Int).Exp(big.NewInt(p.ExpBase), big.NewInt(exponent), nil)

	return mantissa.Mul(mantissa, scale), nil
}

// split divides value by ExpBase until it fits the mantissa field.
// Division truncates; value must not exceed p.MaxValue().
func split(value *big.Int, p Params) (int, *big.Int) {
	maxMantissa := p.MaxMantissa()
	base := big.NewInt(p.ExpBase)

	exponent := 0
	mantissa := new(big.Int).Set(value)
	for mantissa.Cmp(maxMantissa) > 0 {
		mantissa.Quo(mantissa, base)
		exponent++
	}

	return exponent, mantissa
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v
}
