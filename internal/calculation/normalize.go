package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	negOne  = decimal.NewFromInt(-1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// NormalizeRate coerces a stored rate into fractional form. A magnitude
// above 1 is treated as a whole percentage and divided by 100; values in
// [-1, 1] pass through unchanged. A zero-value decimal (missing input)
// stays 0.
func NormalizeRate(v decimal.Decimal) decimal.Decimal {
	if v.GreaterThan(one) || v.LessThan(negOne) {
		return v.Div(hundred)
	}
	return v
}

// RateFromFloat builds a normalized fractional rate from a raw float.
// Non-finite input yields 0 rather than an error; the projection core
// degrades silently on bad numeric input.
func RateFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return NormalizeRate(decimal.NewFromFloat(f))
}

// inflationFactor returns 1+rate, the annual divisor that discounts a
// nominal amount to base-year purchasing power. An inflation rate of
// -100% would zero the factor and make every discount divide by zero,
// so it degrades to 1 (no adjustment) like other unusable input.
func inflationFactor(pct decimal.Decimal) decimal.Decimal {
	f := one.Add(NormalizeRate(pct))
	if f.IsZero() {
		return one
	}
	return f
}

// growthFactor returns e^rate, the continuous-compounding multiplier for
// one year at the given fractional rate. A rate extreme enough to
// overflow the exponential degrades to a factor of 1 (no growth).
func growthFactor(rate decimal.Decimal) decimal.Decimal {
	f := math.Exp(rate.InexactFloat64())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return one
	}
	return decimal.NewFromFloat(f)
}
