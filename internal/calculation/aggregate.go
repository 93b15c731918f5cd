package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/internal/domain"
)

// wageLine pairs a wage projection with its stop-work year for the
// stop-year income suppression rule.
type wageLine struct {
	proj     domain.WageProjection
	stopYear int
	hasStop  bool
}

// Aggregate combines every entity projection into total balance and
// total income series over the combined horizon. Balances sum across
// investments only; income sums wages, investment withdrawals, and
// annuities.
//
// A wage's income is suppressed in the aggregate for the exact year
// equal to its own stop-work year, so a wage ending and a withdrawal or
// annuity beginning in the same year do not double-count as a spike.
//
// A year is absent from an aggregate series only when no contributing
// entity reported a value for it; otherwise missing contributions count
// as zero within the sum. An entirely empty plan yields empty series
// anchored at the as-of year.
func (e *Engine) Aggregate(plan *domain.Plan) domain.CombinedProjection {
	combined := domain.CombinedProjection{
		BeginYear:       e.AsOfYear,
		EndYear:         e.AsOfYear,
		BalanceGross:    domain.Series{},
		BalanceAfterTax: domain.Series{},
		BalanceReal:     domain.Series{},
		IncomeGross:     domain.Series{},
		IncomeAfterTax:  domain.Series{},
		IncomeReal:      domain.Series{},
	}
	if plan.IsEmpty() {
		return combined
	}

	wages := make([]wageLine, 0, len(plan.Wages))
	for _, name := range sortedKeys(plan.Wages) {
		stop, hasStop := plan.Wages[name].StopYear()
		wages = append(wages, wageLine{
			proj:     e.ProjectWage(name, plan),
			stopYear: stop,
			hasStop:  hasStop,
		})
	}
	investments := make([]domain.InvestmentProjection, 0, len(plan.Investments))
	for _, name := range sortedKeys(plan.Investments) {
		investments = append(investments, e.ProjectInvestment(name, plan))
	}
	annuities := make([]domain.AnnuityProjection, 0, len(plan.Annuities))
	for _, name := range sortedKeys(plan.Annuities) {
		annuities = append(annuities, e.ProjectAnnuity(name, plan))
	}

	for _, w := range wages {
		combined.BeginYear = minInt(combined.BeginYear, w.proj.BeginYear)
		combined.EndYear = maxInt(combined.EndYear, w.proj.EndYear)
	}
	for _, inv := range investments {
		combined.BeginYear = minInt(combined.BeginYear, inv.BeginYear)
		combined.EndYear = maxInt(combined.EndYear, inv.EndYear)
	}
	for _, an := range annuities {
		combined.BeginYear = minInt(combined.BeginYear, an.BeginYear)
		combined.EndYear = maxInt(combined.EndYear, an.EndYear)
	}

	taxRate := NormalizeRate(plan.Assumptions.TaxPercentage)
	inflation := inflationFactor(plan.Assumptions.InflationPercentage)

	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		offset := decimal.NewFromInt(int64(year - combined.BeginYear))

		// Total balance across investments; the after-tax and real
		// variants derive from the summed gross balance.
		balance := decimal.Zero
		balanceDefined := false
		for _, inv := range investments {
			if v, ok := inv.Balance.Get(year); ok {
				balance = balance.Add(v)
				balanceDefined = true
			}
		}
		if balanceDefined {
			afterTax := balance.Mul(one.Sub(taxRate))
			combined.BalanceGross[year] = balance
			combined.BalanceAfterTax[year] = afterTax.Round(0)
			combined.BalanceReal[year] = afterTax.Div(inflation.Pow(offset)).Round(0)
		}

		gross := decimal.Zero
		afterTax := decimal.Zero
		real := decimal.Zero
		incomeDefined := false

		for _, w := range wages {
			if w.hasStop && year == w.stopYear {
				continue
			}
			if v, ok := w.proj.Gross.Get(year); ok {
				gross = gross.Add(v)
				incomeDefined = true
			}
			if v, ok := w.proj.AfterTax.Get(year); ok {
				afterTax = afterTax.Add(v)
			}
			if v, ok := w.proj.Real.Get(year); ok {
				real = real.Add(v)
			}
		}
		for _, inv := range investments {
			if v, ok := inv.Withdrawal.Get(year); ok {
				gross = gross.Add(v)
				incomeDefined = true
			}
			if v, ok := inv.WithdrawalAfterTax.Get(year); ok {
				afterTax = afterTax.Add(v)
			}
			if v, ok := inv.WithdrawalReal.Get(year); ok {
				real = real.Add(v)
			}
		}
		for _, an := range annuities {
			if v, ok := an.Gross.Get(year); ok {
				gross = gross.Add(v)
				incomeDefined = true
			}
			if v, ok := an.AfterTax.Get(year); ok {
				afterTax = afterTax.Add(v)
			}
			if v, ok := an.Real.Get(year); ok {
				real = real.Add(v)
			}
		}
		if incomeDefined {
			combined.IncomeGross[year] = gross
			combined.IncomeAfterTax[year] = afterTax
			combined.IncomeReal[year] = real
		}
	}
	return combined
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
