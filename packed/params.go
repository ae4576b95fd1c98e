package packed

import (
	"fmt"
	"math/big"

	"github.com/arloliu/zkwire/errs"
	"github.com/arloliu/zkwire/internal/options"
)

// Parameter bounds accepted by Params.Validate.
const (
	MaxExpBits      = 8
	MaxMantissaBits = 256
)

// Params describes one packing parameterization.
type Params struct {
	ExpBits      int   // width of the exponent field
	MantissaBits int   // width of the mantissa field
	ExpBase      int64 // base raised to the exponent
}

var (
	// FeeParams is the parameterization of transaction fees.
	FeeParams = Params{ExpBits: 5, MantissaBits: 11, ExpBase: 10}
	// AmountParams is the parameterization of transfer amounts.
	AmountParams = Params{ExpBits: 5, MantissaBits: 35, ExpBase: 10}
)

// Option configures Params built by NewParams.
type Option = options.Option[*Params]

// WithExpBits sets the exponent width.
func WithExpBits(n int) Option {
	return options.New(func(p *Params) error {
		if n <= 0 || n > MaxExpBits {
			return fmt.Errorf("%w: exponent width %d not in [1, %d]", errs.ErrInvalidParams, n, MaxExpBits)
		}
		p.ExpBits = n

		return nil
	})
}

// WithMantissaBits sets the mantissa width.
func WithMantissaBits(n int) Option {
	return options.New(func(p *Params) error {
		if n <= 0 || n > MaxMantissaBits {
			return fmt.Errorf("%w: mantissa width %d not in [1, %d]", errs.ErrInvalidParams, n, MaxMantissaBits)
		}
		p.MantissaBits = n

		return nil
	})
}

// WithExpBase sets the exponent base. The default base is 10.
func WithExpBase(base int64) Option {
	return options.New(func(p *Params) error {
		if base < 2 {
			return fmt.Errorf("%w: exponent base %d is less than 2", errs.ErrInvalidParams, base)
		}
		p.ExpBase = base

		return nil
	})
}

// NewParams builds and validates a custom parameterization.
//
// Both widths must be given; their sum must be a multiple of 8.
//
// Example:
//
//	p, err := packed.NewParams(packed.WithExpBits(5), packed.WithMantissaBits(11))
func NewParams(opts ...Option) (Params, error) {
	p, err := options.Build(&Params{ExpBase: 10}, func(p *Params) error { return p.Validate() }, opts...)
	if err != nil {
		return Params{}, err
	}

	return *p, nil
}

// Validate reports whether p describes a usable, byte-aligned layout.
func (p Params) Validate() error {
	switch {
	case p.ExpBits <= 0 || p.ExpBits > MaxExpBits:
		return fmt.Errorf("%w: exponent width %d not in [1, %d]", errs.ErrInvalidParams, p.ExpBits, MaxExpBits)
	case p.MantissaBits <= 0 || p.MantissaBits > MaxMantissaBits:
		return fmt.Errorf("%w: mantissa width %d not in [1, %d]", errs.ErrInvalidParams, p.MantissaBits, MaxMantissaBits)
	case (p.ExpBits+p.MantissaBits)%8 != 0:
		return fmt.Errorf("%w: total width %d is not a multiple of 8", errs.ErrInvalidParams, p.ExpBits+p.MantissaBits)
	case p.ExpBase < 2:
		return fmt.Errorf("%w: exponent base %d is less than 2", errs.ErrInvalidParams, p.ExpBase)
	}

	return nil
}

// Bits returns the total packed width in bits.
func (p Params) Bits() int {
	return p.ExpBits + p.MantissaBits
}

// ByteLen returns the packed width in bytes.
func (p Params) ByteLen() int {
	return p.Bits() / 8
}

// MaxExponent returns the largest encodable exponent, 2^ExpBits - 1.
func (p Params) MaxExponent() int {
	return 1<<p.ExpBits - 1
}

// MaxMantissa returns the largest encodable mantissa, 2^MantissaBits - 1.
func (p Params) MaxMantissa() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(p.MantissaBits))
	return m.Sub(m, big.NewInt(1))
}

// MaxValue returns the largest representable value,
// MaxMantissa * ExpBase^MaxExponent.
func (p Params) MaxValue() *big.Int {
	scale := new(big.Int).Exp(big.NewInt(p.ExpBase), big.NewInt(int64(p.MaxExponent())), nil)
	return scale.Mul(scale, p.MaxMantissa())
}

func (p Params) String() string {
	return fmt.Sprintf("exp=%d mantissa=%d base=%d", p.ExpBits, p.MantissaBits, p.ExpBase)
}
