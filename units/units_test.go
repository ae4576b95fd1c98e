package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zkwire/errs"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()

	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)

	return v
}

func TestDefault(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int32
		want     string
	}{
		{name: "zero", amount: "0", decimals: 18, want: "0"},
		{name: "one ether", amount: "1000000000000000000", decimals: 18, want: "1"},
		{name: "fraction", amount: "1500000000000000000", decimals: 18, want: "1.5"},
		{name: "one wei", amount: "1", decimals: 18, want: "0.000000000000000001"},
		{name: "no decimals", amount: "123456789", decimals: 0, want: "123456789"},
		{name: "usdc", amount: "2500001", decimals: 6, want: "2.500001"},
		{name: "negative", amount: "-1500000", decimals: 6, want: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Default().Format(bigFromString(t, tt.amount), tt.decimals))
		})
	}

	require.Equal(t, "0", Default().Format(nil, 18))
}

func TestFormat_Options(t *testing.T) {
	t.Run("grouping", func(t *testing.T) {
		f, err := NewFormatter(WithGrouping(true))
		require.NoError(t, err)

		require.Equal(t, "123,456,789", f.Format(big.NewInt(123456789), 0))
		require.Equal(t, "1,234,567.5", f.Format(big.NewInt(12345675), 1))
		require.Equal(t, "999", f.Format(big.NewInt(999), 0))
		require.Equal(t, "1,000", f.Format(big.NewInt(1000), 0))
		require.Equal(t, "-1,234", f.Format(big.NewInt(-1234), 0))
	})

	t.Run("minimum fraction digits", func(t *testing.T) {
		f, err := NewFormatter(WithMinFractionDigits(2))
		require.NoError(t, err)

		require.Equal(t, "1.00", f.Format(big.NewInt(1000000), 6))
		require.Equal(t, "1.50", f.Format(big.NewInt(1500000), 6))
		require.Equal(t, "1.234", f.Format(big.NewInt(1234000), 6))
	})

	t.Run("invalid option", func(t *testing.T) {
		_, err := NewFormatter(WithMinFractionDigits(-1))
		require.ErrorIs(t, err, errs.ErrInvalidParams)
	})
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			in       string
			decimals int32
			want     string
		}{
			{in: "1.5", decimals: 18, want: "1500000000000000000"},
			{in: "0.000000000000000001", decimals: 18, want: "1"},
			{in: "42", decimals: 0, want: "42"},
			{in: "0", decimals: 6, want: "0"},
			{in: "2.500001", decimals: 6, want: "2500001"},
		}

		for _, tt := range tests {
			got, err := Default().Parse(tt.in, tt.decimals)
			require.NoError(t, err, tt.in)
			require.Equal(t, tt.want, got.String(), tt.in)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		for _, in := range []string{"", "abc", "1.2.3", "-1", "1.0000001", "1,000"} {
			_, err := Default().Parse(in, 6)
			require.ErrorIs(t, err, errs.ErrInvalidAmount, in)
		}
	})

	t.Run("grouping separators", func(t *testing.T) {
		f, err := NewFormatter(WithGrouping(true))
		require.NoError(t, err)

		got, err := f.Parse("1,234.5", 1)
		require.NoError(t, err)
		require.Equal(t, "12345", got.String())
	})

	t.Run("format round trip", func(t *testing.T) {
		amount := bigFromString(t, "123456789012345678901")
		got, err := Default().Parse(Default().Format(amount, 18), 18)
		require.NoError(t, err)
		require.Equal(t, amount.String(), got.String())
	})
}

func TestFormatClosestPackable(t *testing.T) {
	require := require.New(t)

	s, err := Default().FormatClosestPackableFee(big.NewInt(2048), 3)
	require.NoError(err)
	require.Equal("2.04", s)

	s, err = Default().FormatClosestPackableAmount(bigFromString(t, "1000000000000000001"), 18)
	require.NoError(err)
	require.Equal("1", s)

	_, err = Default().FormatClosestPackableFee(big.NewInt(-1), 18)
	require.ErrorIs(err, errs.ErrNegativeInteger)
}
