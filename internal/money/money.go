// Package money wraps shopspring/decimal with the rounding conventions
// used across invoice pricing. Line components are rounded to 2 places
// individually; running totals stay unrounded until the very end.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates a decimal from an integer quantity
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromFloat creates a decimal from a float without rounding
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// FromString parses a decimal from a string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from a string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Round rounds to 2 decimal places (half away from zero)
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Paise converts an amount to whole paise (hundredths), truncating
// any sub-paisa remainder. Used for payment-gateway links.
func Paise(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).IntPart()
}

// RatePercent formats a fractional tax rate as a percentage with one
// decimal, e.g. 0.12 -> "12.0"
func RatePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1)
}

// Sum adds a slice of decimals without rounding
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if d >= 0
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
