package unit

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nftmart/goclient/domain"
)

func TestToBaseUnits(t *testing.T) {
	req := require.New(t)
	c := NewConverter(EtherDecimals)

	tests := []struct {
		in   string
		want string
	}{
		{"1", "1000000000000000000"},
		{"0.01", "10000000000000000"},
		{"1.5", "1500000000000000000"},
		{"0.000000000000000001", "1"},
		{"0", "0"},
		{"123456.789", "123456789000000000000000"},
	}
	for _, tt := range tests {
		got, err := c.ToBaseUnits(tt.in)
		req.NoError(err, tt.in)
		want, ok := new(big.Int).SetString(tt.want, 10)
		req.True(ok)
		req.Zero(got.Cmp(want), tt.in)
	}
}

func TestToBaseUnitsPrecision(t *testing.T) {
	req := require.New(t)
	c := NewConverter(EtherDecimals)

	// 19 fractional digits can not be represented at scale 18
	_, err := c.ToBaseUnits("0.0000000000000000001")
	req.ErrorIs(err, domain.ErrPrecision)

	_, err = c.ToBaseUnits("1.0000000000000000005")
	req.ErrorIs(err, domain.ErrPrecision)

	// smaller scale converter rejects earlier
	c2 := NewConverter(2)
	_, err = c2.ToBaseUnits("0.001")
	req.ErrorIs(err, domain.ErrPrecision)
	_, err = c2.ToBaseUnits("0.01")
	req.NoError(err)
}

func TestToBaseUnitsInvalidInput(t *testing.T) {
	req := require.New(t)
	c := NewConverter(EtherDecimals)

	for _, in := range []string{"", "abc", "1.2.3", "1,5"} {
		_, err := c.ToBaseUnits(in)
		req.ErrorIs(err, domain.ErrInvalidNumberFormat, in)
	}
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)
	c := NewConverter(EtherDecimals)

	// FromBaseUnits(ToBaseUnits(x)) == x for canonical decimal strings
	// exactly representable at the scale
	for _, in := range []string{
		"1",
		"0.01",
		"1.5",
		"0.000000000000000001",
		"42",
		"123456.789",
	} {
		v, err := c.ToBaseUnits(in)
		req.NoError(err, in)
		req.Equal(in, c.FromBaseUnits(v), in)
	}
}

func TestFromBaseUnits(t *testing.T) {
	req := require.New(t)
	c := NewConverter(EtherDecimals)

	wei, ok := new(big.Int).SetString("30000000000000000", 10)
	req.True(ok)
	req.Equal("0.03", c.FromBaseUnits(wei))
}
