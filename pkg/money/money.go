// Package money provides dollar rounding and formatting helpers.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a dollar amount to whole cents.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders a dollar amount as a fixed two-decimal string,
// e.g. "1234.56".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
