package output

import (
	"bytes"
	"fmt"

	"github.com/planfolio/projector/internal/domain"
)

// ConsoleFormatter provides a concise text summary of a plan report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	combined := report.Combined
	fmt.Fprintln(&buf, "PLAN PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "As of: %d   Horizon: %d-%d\n", report.AsOfYear, combined.BeginYear, combined.EndYear)
	fmt.Fprintf(&buf, "Entities: %d wages, %d investments, %d annuities\n",
		len(report.Wages), len(report.Investments), len(report.Annuities))
	fmt.Fprintln(&buf)

	for _, w := range report.Wages {
		fmt.Fprintf(&buf, "Wage %q (%d-%d):", w.Name, w.BeginYear, w.EndYear)
		if v, ok := w.Gross.Get(w.BeginYear); ok {
			fmt.Fprintf(&buf, " FirstMonthGross=%s", FormatCurrency(v))
		}
		if v, ok := w.AfterTax.Get(w.BeginYear); ok {
			fmt.Fprintf(&buf, " AfterTax=%s", FormatCurrency(v))
		}
		fmt.Fprintln(&buf)
	}
	for _, inv := range report.Investments {
		fmt.Fprintf(&buf, "Investment %q (%d-%d):", inv.Name, inv.BeginYear, inv.EndYear)
		if v, ok := inv.Balance.Get(inv.EndYear); ok {
			fmt.Fprintf(&buf, " FinalBalance=%s", FormatCurrency(v))
		}
		if years := inv.Withdrawal.Years(); len(years) > 0 {
			first := years[0]
			v, _ := inv.Withdrawal.Get(first)
			fmt.Fprintf(&buf, " WithdrawalsFrom=%d FirstMonthly=%s", first, FormatCurrency(v))
		} else {
			fmt.Fprintf(&buf, " Withdrawals=none")
		}
		fmt.Fprintln(&buf)
	}
	for _, an := range report.Annuities {
		fmt.Fprintf(&buf, "Annuity %q (%d-%d):", an.Name, an.BeginYear, an.EndYear)
		if years := an.Gross.Years(); len(years) > 0 {
			v, _ := an.Gross.Get(years[0])
			fmt.Fprintf(&buf, " StartsIn=%d Monthly=%s", years[0], FormatCurrency(v))
		} else {
			fmt.Fprintf(&buf, " inactive")
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Year  TotalBalance  TotalIncome  TotalIncomeReal")
	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		fmt.Fprintf(&buf, "%d  %12s  %11s  %15s\n",
			year,
			cellOrDash(combined.BalanceGross, year),
			cellOrDash(combined.IncomeGross, year),
			cellOrDash(combined.IncomeReal, year),
		)
	}
	return buf.Bytes(), nil
}

func cellOrDash(s domain.Series, year int) string {
	v, ok := s.Get(year)
	if !ok {
		return "-"
	}
	return FormatCurrency(v)
}
