package money

import "github.com/shopspring/decimal"

// Monetary amounts are carried as decimals end to end. Currency figures are
// quantized half-up to 2 places, stock quantities to 3 places, and the grand
// total of a bill to the nearest whole currency unit.

var (
	// Zero is the 2-decimal zero amount.
	Zero = decimal.Zero

	// Tolerance is the permitted reconciliation drift between a line's base
	// and its taxable + tax components (0.01 currency unit).
	Tolerance = decimal.New(1, -2)
)

// Round2 rounds a currency amount half-up to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round3 rounds a stock quantity half-up to 3 decimal places.
func Round3(d decimal.Decimal) decimal.Decimal {
	return d.Round(3)
}

// RoundWhole rounds an amount half-up to the nearest whole currency unit.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FromFloat converts a float coming off the wire into a decimal via its
// string form, avoiding binary float artifacts.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Reconciles reports whether got is within Tolerance of want.
func Reconciles(want, got decimal.Decimal) bool {
	return want.Sub(got).Abs().LessThanOrEqual(Tolerance)
}
