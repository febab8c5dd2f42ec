package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/demarket/goapi/domain"
)

func TestParseUnits(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		in       string
		decimals int32
		expected string
	}{
		{"1.0", 18, "1000000000000000000"},
		{"1", 18, "1000000000000000000"},
		{"10", 18, "10000000000000000000"},
		{"0.5", 18, "500000000000000000"},
		{"1.5", 6, "1500000"},
		{"0", 18, "0"},
		{"123.456789012345678912", 18, "123456789012345678912"},
	}
	for _, c := range cases {
		v, err := ParseUnits(c.in, c.decimals)
		req.NoError(err, c.in)
		req.Equal(c.expected, v.String(), c.in)
	}
}

func TestParseUnitsRejectsInvalidInput(t *testing.T) {
	req := require.New(t)

	for _, in := range []string{"abc", "", "1.2.3", "10 "} {
		_, err := ParseUnits(in, 18)
		req.ErrorIs(err, domain.ErrInvalidNumberFormat, in)
	}

	// more fractional digits than the precision allows
	_, err := ParseUnits("0.0000000000000000001", 18)
	req.ErrorIs(err, domain.ErrInvalidNumberFormat)
	_, err = ParseUnits("1.2345678", 6)
	req.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func TestFormatUnits(t *testing.T) {
	req := require.New(t)

	one := new(big.Int)
	one.SetString("1000000000000000000", 10)
	req.Equal("1.0", FormatEther(one))

	ten := new(big.Int)
	ten.SetString("10000000000000000000", 10)
	req.Equal("10.0", FormatEther(ten))

	frac := new(big.Int)
	frac.SetString("1230000000000000000", 10)
	req.Equal("1.23", FormatEther(frac))

	req.Equal("0.0", FormatEther(big.NewInt(0)))
	req.Equal("1.5", FormatUnits(big.NewInt(1500000), 6))
}

func TestRoundTripIsLossFree(t *testing.T) {
	req := require.New(t)

	for _, s := range []string{"1.0", "10.0", "0.5", "123.456789012345678912", "0.000000000000000001"} {
		v, err := ParseEther(s)
		req.NoError(err)
		req.Equal(s, FormatEther(v), s)

		again, err := ParseEther(FormatEther(v))
		req.NoError(err)
		req.Equal(v.String(), again.String(), s)
	}
}
