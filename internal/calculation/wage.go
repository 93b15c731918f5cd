package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/internal/domain"
)

// ProjectWage produces the three monthly income series for the named
// wage: gross, after tax, and after tax in base-year purchasing power.
// The horizon begins at the as-of year and ends at the explicit planning
// horizon if one is set, else the wage's stop-work year, else the begin
// year.
//
// An unknown name yields an empty projection anchored at the as-of year;
// the chart renders it as a flat nothing rather than an error.
func (e *Engine) ProjectWage(name string, plan *domain.Plan) domain.WageProjection {
	p := domain.WageProjection{
		Name:      name,
		BeginYear: e.AsOfYear,
		EndYear:   e.AsOfYear,
		Gross:     domain.Series{},
		AfterTax:  domain.Series{},
		Real:      domain.Series{},
	}
	wage, ok := plan.Wages[name]
	if !ok {
		return p
	}

	if plan.Assumptions.PlanningHorizonYears > 0 {
		p.EndYear = e.AsOfYear + plan.Assumptions.PlanningHorizonYears
	} else if stop, ok := wage.StopYear(); ok {
		p.EndYear = stop
	}
	if p.EndYear < p.BeginYear {
		p.EndYear = p.BeginYear
	}

	taxRate := NormalizeRate(plan.Assumptions.TaxPercentage)
	raiseFactor := one.Add(NormalizeRate(wage.Raise))
	inflation := inflationFactor(plan.Assumptions.InflationPercentage)

	for year := p.BeginYear; year <= p.EndYear; year++ {
		offset := decimal.NewFromInt(int64(year - p.BeginYear))
		annual := wage.Annual.Mul(raiseFactor.Pow(offset))
		gross := annual.Div(twelve)
		afterTax := gross.Mul(one.Sub(taxRate))
		real := afterTax.Div(inflation.Pow(offset))

		// Each series is rounded independently from the unrounded chain.
		p.Gross[year] = gross.Round(0)
		p.AfterTax[year] = afterTax.Round(0)
		p.Real[year] = real.Round(0)
	}
	return p
}

// wageAnnualFor returns a wage's projected gross annual amount for a
// calendar year, as used by wage-linked investment contributions.
func (e *Engine) wageAnnualFor(wage domain.Wage, year int) decimal.Decimal {
	offset := year - e.AsOfYear
	if offset < 0 {
		offset = 0
	}
	raiseFactor := one.Add(NormalizeRate(wage.Raise))
	return wage.Annual.Mul(raiseFactor.Pow(decimal.NewFromInt(int64(offset))))
}
