// Package units converts between integer base units and human-readable token
// amounts.
//
// Formatting is locale-fixed: '.' is the decimal separator and ',' the
// optional thousands separator, regardless of the host locale. The package
// never participates in encoding; it exists for display and user input only.
//
//	units.Default().Format(big.NewInt(1500000), 6) // "1.5"
//	units.Default().Parse("1.5", 18)                // 1500000000000000000
package units

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/arloliu/zkwire/errs"
	"github.com/arloliu/zkwire/internal/options"
	"github.com/arloliu/zkwire/packed"
)

const (
	decimalSeparator  = "."
	groupingSeparator = ","
)

// Formatter renders and parses token amounts. A Formatter is immutable after
// construction and safe for concurrent use.
type Formatter struct {
	grouping          bool
	minFractionDigits int32
}

// Option configures a Formatter.
type Option = options.Option[*Formatter]

// WithGrouping enables the ',' thousands separator.
func WithGrouping(enabled bool) Option {
	return options.NoError(func(f *Formatter) {
		f.grouping = enabled
	})
}

// WithMinFractionDigits pads the fractional part with zeros up to n digits.
func WithMinFractionDigits(n int32) Option {
	return options.New(func(f *Formatter) error {
		if n < 0 {
			return fmt.Errorf("%w: negative fraction digits %d", errs.ErrInvalidParams, n)
		}
		f.minFractionDigits = n

		return nil
	})
}

// NewFormatter creates a Formatter. Without options amounts are printed with
// no grouping and no trailing zeros.
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	return &Formatter{}
})

// Default returns the process-wide Formatter, created on first use.
func Default() *Formatter {
	return defaultFormatter()
}

// Format renders amount, given in base units, with decimals fractional digits.
// A nil amount is zero.
func (f *Formatter) Format(amount *big.Int, decimals int32) string {
	if amount == nil {
		amount = new(big.Int)
	}

	d := decimal.NewFromBigInt(amount, -decimals)
	s := d.String()
	if fractionDigits(s) < f.minFractionDigits {
		s = d.StringFixed(f.minFractionDigits)
	}

	if f.grouping {
		s = groupThousands(s)
	}

	return s
}

// Parse converts a human-readable amount into base units.
//
// Returns errs.ErrInvalidAmount for malformed or negative input, or when s has
// more than decimals fractional digits.
func (f *Formatter) Parse(s string, decimals int32) (*big.Int, error) {
	text := s
	if f.grouping {
		text = strings.ReplaceAll(text, groupingSeparator, "")
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", errs.ErrInvalidAmount, s, err)
	}

	if d.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", errs.ErrInvalidAmount, s)
	}

	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", errs.ErrInvalidAmount, s, decimals)
	}

	return shifted.BigInt(), nil
}

// FormatClosestPackableAmount rounds amount down to a packable amount and
// formats it.
func (f *Formatter) FormatClosestPackableAmount(amount *big.Int, decimals int32) (string, error) {
	closest, err := packed.ClosestPackableAmount(amount)
	if err != nil {
		return "", err
	}

	return f.Format(closest, decimals), nil
}

// FormatClosestPackableFee rounds fee down to a packable fee and formats it.
func (f *Formatter) FormatClosestPackableFee(fee *big.Int, decimals int32) (string, error) {
	closest, err := packed.ClosestPackableFee(fee)
	if err != nil {
		return "", err
	}

	return f.Format(closest, decimals), nil
}

func fractionDigits(s string) int32 {
	_, frac, ok := strings.Cut(s, decimalSeparator)
	if !ok {
		return 0
	}

	return int32(len(frac))
}

func groupThousands(s string) string {
	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}

	intPart, frac, hasFrac := strings.Cut(s, decimalSeparator)

	var sb strings.Builder
	sb.Grow(len(s) + len(intPart)/3 + 1)
	sb.WriteString(sign)
	for i := range len(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(groupingSeparator)
		}
		sb.WriteByte(intPart[i])
	}

	if hasFrac {
		sb.WriteString(decimalSeparator)
		sb.WriteString(frac)
	}

	return sb.String()
}
