package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/internal/domain"
)

// ProjectAnnuity produces the three monthly income series for the named
// annuity. All series are absent before the annuity's start year; an
// annuity with no parseable start date never activates. The horizon is
// computed the same way as for investments.
func (e *Engine) ProjectAnnuity(name string, plan *domain.Plan) domain.AnnuityProjection {
	p := domain.AnnuityProjection{
		Name:      name,
		BeginYear: e.AsOfYear,
		EndYear:   e.AsOfYear,
		Gross:     domain.Series{},
		AfterTax:  domain.Series{},
		Real:      domain.Series{},
	}
	annuity, ok := plan.Annuities[name]
	if !ok {
		return p
	}
	p.EndYear = e.horizonEnd(plan)

	startYear, hasStart := annuity.StartYear()
	if !hasStart {
		return p
	}

	taxRate := NormalizeRate(plan.Assumptions.TaxPercentage)
	inflation := inflationFactor(plan.Assumptions.InflationPercentage)

	for year := p.BeginYear; year <= p.EndYear; year++ {
		if year < startYear {
			continue
		}
		offset := decimal.NewFromInt(int64(year - p.BeginYear))
		gross := annuity.Monthly
		afterTax := gross.Mul(one.Sub(taxRate))
		real := afterTax.Div(inflation.Pow(offset))
		p.Gross[year] = gross.Round(0)
		p.AfterTax[year] = afterTax.Round(0)
		p.Real[year] = real.Round(0)
	}
	return p
}
