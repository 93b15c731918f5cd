package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/pkg/money"
)

// FormatCurrency formats a decimal as USD whole units, the granularity
// the projection series are reported at. Kept here so it can be reused
// by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func intToString(v int) string { return strconv.Itoa(v) }
