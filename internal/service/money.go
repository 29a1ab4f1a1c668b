package service

import "github.com/shopspring/decimal"

// TotalPrice multiplies a unit price by a quantity in decimal space, so a
// price like 10.1 times 3 comes out as 30.3 and not 30.299999999999997.
// The result is stored at full precision; rounding happens only in reports.
func TotalPrice(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		InexactFloat64()
}

// Round2 rounds a monetary value to exactly two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
