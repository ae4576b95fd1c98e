package packed

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zkwire/errs"
)

func TestPackFeeChecked(t *testing.T) {
	t.Run("zero packs to two zero bytes", func(t *testing.T) {
		buf, err := PackFeeChecked(big.NewInt(0))
		require.NoError(t, err)
		require.Equal(t, []byte{0x00, 0x00}, buf)
	})

	t.Run("exactly packable", func(t *testing.T) {
		for _, v := range []int64{1, 7, 1000, 2047, 2040, 10000, 123000} {
			_, err := PackFeeChecked(big.NewInt(v))
			require.NoError(t, err, "fee %d", v)
		}
	})

	t.Run("greedy division loses a remainder", func(t *testing.T) {
		for _, v := range []int64{2048, 2049, 10007, 123456} {
			_, err := PackFeeChecked(big.NewInt(v))
			require.ErrorIs(t, err, errs.ErrFeeNotPackable, "fee %d", v)
			require.True(t, IsNotPackable(err))
		}
	})

	t.Run("out of range is not a packability error", func(t *testing.T) {
		over := new(big.Int).Add(FeeParams.MaxValue(), big.NewInt(1))
		_, err := PackFeeChecked(over)
		require.ErrorIs(t, err, errs.ErrIntegerTooLarge)
		require.False(t, IsNotPackable(err))
	})
}

func TestPackAmountChecked(t *testing.T) {
	require := require.New(t)

	buf, err := PackAmountChecked(pow10(18))
	require.NoError(err)
	require.Equal([]byte{0x4a, 0x81, 0x7c, 0x80, 0x08}, buf)

	_, err = PackAmountChecked(new(big.Int).Add(pow10(18), big.NewInt(1)))
	require.ErrorIs(err, errs.ErrAmountNotPackable)
	require.NotErrorIs(err, errs.ErrFeeNotPackable)

	_, err = PackAmountChecked(big.NewInt(34359738368))
	require.ErrorIs(err, errs.ErrAmountNotPackable)

	_, err = PackAmountChecked(big.NewInt(-5))
	require.ErrorIs(err, errs.ErrNegativeInteger)

	buf, err = PackAmountChecked(nil)
	require.NoError(err)
	require.Equal(make([]byte, 5), buf)
}

func TestClosestPackable(t *testing.T) {
	tests := []struct {
		name    string
		closest func(*big.Int) (*big.Int, error)
		value   int64
		want    int64
	}{
		{name: "fee already packable", closest: ClosestPackableFee, value: 2047, want: 2047},
		{name: "fee rounds down", closest: ClosestPackableFee, value: 2048, want: 2040},
		{name: "fee never rounds up", closest: ClosestPackableFee, value: 2049, want: 2040},
		{name: "fee prime", closest: ClosestPackableFee, value: 10007, want: 10000},
		{name: "fee zero", closest: ClosestPackableFee, value: 0, want: 0},
		{name: "amount already packable", closest: ClosestPackableAmount, value: 34359738367, want: 34359738367},
		{name: "amount rounds down", closest: ClosestPackableAmount, value: 34359738368, want: 34359738360},
		{name: "amount 999999999999", closest: ClosestPackableAmount, value: 999999999999, want: 999999999900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.closest(big.NewInt(tt.value))
			require.NoError(t, err)
			require.Equal(t, big.NewInt(tt.want).String(), got.String())
		})
	}
}

func TestClosestPackable_TooLarge(t *testing.T) {
	_, err := ClosestPackableFee(new(big.Int).Add(FeeParams.MaxValue(), big.NewInt(1)))
	require.ErrorIs(t, err, errs.ErrIntegerTooLarge)

	_, err = ClosestPackableAmount(new(big.Int).Add(AmountParams.MaxValue(), big.NewInt(1)))
	require.ErrorIs(t, err, errs.ErrIntegerTooLarge)
}

func TestClosestPackable_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name    string
		limit   *big.Int
		closest func(*big.Int) (*big.Int, error)
		check   func(*big.Int) ([]byte, error)
	}{
		{name: "fee", limit: FeeParams.MaxValue(), closest: ClosestPackableFee, check: PackFeeChecked},
		{name: "amount", limit: AmountParams.MaxValue(), closest: ClosestPackableAmount, check: PackAmountChecked},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for range 300 {
				v := new(big.Int).Rand(rng, c.limit)

				once, err := c.closest(v)
				require.NoError(t, err)

				twice, err := c.closest(once)
				require.NoError(t, err)
				require.Equal(t, once.String(), twice.String())

				_, err = c.check(once)
				require.NoError(t, err, "rounded value %s must be packable", once)
			}
		})
	}
}

func TestIsPackable(t *testing.T) {
	require.True(t, IsFeePackable(big.NewInt(100)))
	require.False(t, IsFeePackable(big.NewInt(2048)))
	require.True(t, IsAmountPackable(pow10(18)))
	require.False(t, IsAmountPackable(big.NewInt(-1)))
}

func TestUnpack(t *testing.T) {
	v, err := UnpackFee([]byte{0x7d, 0x00})
	require.NoError(t, err)
	require.Equal(t, "1000", v.String())

	v, err = UnpackAmount([]byte{0x00, 0x00, 0x00, 0x00, 0x20})
	require.NoError(t, err)
	require.Equal(t, "1", v.String())

	_, err = UnpackAmount([]byte{0x7d, 0x00})
	require.ErrorIs(t, err, errs.ErrIncorrectPackedLength)
}

func TestStandardLayouts(t *testing.T) {
	require := require.New(t)

	require.Equal(FeeParams, feeLayout.params)
	require.Equal(FeeParams.MaxValue().String(), feeLayout.maxValue.String())
	require.Equal(AmountParams, amountLayout.params)
	require.Equal(AmountParams.MaxValue().String(), amountLayout.maxValue.String())

	// the cached bound must not be shared with callers
	maxFee, err := ClosestPackableFee(FeeParams.MaxValue())
	require.NoError(err)
	maxFee.SetInt64(0)
	require.Equal(FeeParams.MaxValue().String(), feeLayout.maxValue.String())

	_, err = PackFeeChecked(new(big.Int).Add(FeeParams.MaxValue(), big.NewInt(1)))
	require.ErrorIs(err, errs.ErrIntegerTooLarge)
}
