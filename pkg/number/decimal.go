package number

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal parse decimal from string, zero on failure
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// WadFromDecimal converts a human amount to an 18 decimal fixed point
// integer, truncating anything beyond 18 decimals.
func WadFromDecimal(d decimal.Decimal) *big.Int {
	return d.Shift(18).Truncate(0).BigInt()
}

// DecimalFromWad renders an 18 decimal fixed point integer as a decimal.
func DecimalFromWad(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(v, -18)
}
