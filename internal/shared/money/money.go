// Package money converts between the backend's minor currency units (fen)
// and the decimal major units (yuan) operators type into the console.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FenToYuan converts minor units to major units with two decimal places.
func FenToYuan(fen int64) decimal.Decimal {
	return decimal.New(fen, -2)
}

// YuanToFen converts major units back to minor units, rounding half away from zero.
func YuanToFen(yuan decimal.Decimal) int64 {
	return yuan.Mul(hundred).Round(0).IntPart()
}

// ParseYuan parses a user typed amount. Blank input is zero.
func ParseYuan(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
