// Package money converts between the decimal amounts carried in JSON and the
// int64 minor units (cents) used everywhere inside the service. The
// conversion goes through shopspring/decimal so 25.50 maps to exactly 2550.
package money

import "github.com/shopspring/decimal"

// Tolerance is the maximum divergence, in minor units, accepted between a
// caller-supplied allocation sum and a campaign's raised amount.
const Tolerance int64 = 1

var hundred = decimal.NewFromInt(100)

// FromFloat converts a decimal currency amount to minor units, rounding to
// the nearest cent.
func FromFloat(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// ToFloat converts minor units back to a decimal currency amount.
func ToFloat(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(hundred).Float64()
	return f
}

// WithinTolerance reports whether two minor-unit amounts differ by no more
// than Tolerance.
func WithinTolerance(a, b int64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Tolerance
}
