// Package money holds the rounding policy shared by every monetary figure.
package money

import "github.com/shopspring/decimal"

// Scale is the number of decimal places stored for amounts.
const Scale = 2

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// OrZero collapses an absent amount to zero at the point where arithmetic
// needs it; callers keep the NullDecimal elsewhere.
func OrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

func Present(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func Absent() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// MustParse is for constants and tests.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
