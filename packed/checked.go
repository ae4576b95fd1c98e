package packed

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/arloliu/zkwire/errs"
)

// PackFeeChecked packs fee with FeeParams and rejects it with
// errs.ErrFeeNotPackable unless unpacking reproduces it exactly.
func PackFeeChecked(fee *big.Int) ([]byte, error) {
	return feeLayout.packChecked(fee)
}

// PackAmountChecked packs amount with AmountParams and rejects it with
// errs.ErrAmountNotPackable unless unpacking reproduces it exactly.
func PackAmountChecked(amount *big.Int) ([]byte, error) {
	return amountLayout.packChecked(amount)
}

// ClosestPackableFee rounds fee down to the nearest value PackFeeChecked accepts.
func ClosestPackableFee(fee *big.Int) (*big.Int, error) {
	return feeLayout.closest(fee)
}

// ClosestPackableAmount rounds amount down to the nearest value
// PackAmountChecked accepts.
func ClosestPackableAmount(amount *big.Int) (*big.Int, error) {
	return amountLayout.closest(amount)
}

// IsFeePackable reports whether fee is exactly representable as a packed fee.
func IsFeePackable(fee *big.Int) bool {
	_, err := PackFeeChecked(fee)
	return err == nil
}

// IsAmountPackable reports whether amount is exactly representable as a
// packed amount.
func IsAmountPackable(amount *big.Int) bool {
	_, err := PackAmountChecked(amount)
	return err == nil
}

// UnpackFee decodes a 2-byte packed fee.
func UnpackFee(buf []byte) (*big.Int, error) {
	return unpack(buf, feeLayout.params)
}

// UnpackAmount decodes a 5-byte packed amount.
func UnpackAmount(buf []byte) (*big.Int, error) {
	return unpack(buf, amountLayout.params)
}

// layout is a validated Params with its maximum value computed once.
type layout struct {
	params      Params
	maxValue    *big.Int
	notPackable error
}

var (
	feeLayout    = newLayout(FeeParams, errs.ErrFeeNotPackable)
	amountLayout = newLayout(AmountParams, errs.ErrAmountNotPackable)
)

func newLayout(p Params, notPackable error) layout {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	return layout{params: p, maxValue: p.MaxValue(), notPackable: notPackable}
}

func (l layout) packChecked(value *big.Int) ([]byte, error) {
	value = orZero(value)

	buf, err := pack(value, l.params, l.maxValue)
	if err != nil {
		return nil, err
	}

	unpacked, err := unpack(buf, l.params)
	if err != nil {
		return nil, err
	}

	if unpacked.Cmp(value) != 0 {
		return nil, fmt.Errorf("%w: %s (closest packable is %s)", l.notPackable, value, unpacked)
	}

	return buf, nil
}

func (l layout) closest(value *big.Int) (*big.Int, error) {
	buf, err := pack(value, l.params, l.maxValue)
	if err != nil {
		return nil, err
	}

	return unpack(buf, l.params)
}

// IsNotPackable reports whether err rejects a value only because it is not
// exactly packable, i.e. rounding it with ClosestPackableFee or
// ClosestPackableAmount makes it admissible.
func IsNotPackable(err error) bool {
	return errors.Is(err, errs.ErrFeeNotPackable) || errors.Is(err, errs.ErrAmountNotPackable)
}
