// Package units converts between human decimal strings and on-chain
// fixed-point integers. Formatting mirrors ethers' formatUnits: trailing
// zeros are trimmed but at least one fractional digit is kept, so 1e18
// base units render as "1.0".
package units

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/demarket/goapi/domain"
)

// EtherDecimals is the default fixed-point precision used by the
// marketplace contract for prices and quantities.
const EtherDecimals = 18

// ParseUnits converts a decimal string to base units at the given
// precision. Values with more fractional digits than the precision
// allows are rejected rather than rounded.
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	shifted := bigIntShift(d, decimals)
	if shifted == nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	return shifted, nil
}

// ParseEther parses a decimal string at 18 decimals.
func ParseEther(s string) (*big.Int, error) {
	return ParseUnits(s, EtherDecimals)
}

// FormatUnits renders base units as a decimal string at the given
// precision.
func FormatUnits(v *big.Int, decimals int32) string {
	s := decimal.NewFromBigInt(v, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatEther renders base units as a decimal string at 18 decimals.
func FormatEther(v *big.Int) string {
	return FormatUnits(v, EtherDecimals)
}

func bigIntShift(d decimal.Decimal, decimals int32) *big.Int {
	shifted := d.Shift(decimals)
	if shifted.Exponent() < 0 {
		// fractional base units cannot exist on chain
		return nil
	}
	return shifted.BigInt()
}
