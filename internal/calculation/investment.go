package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/internal/domain"
)

// ProjectInvestment produces the end-of-year balance series and the
// three monthly withdrawal series for the named investment. The horizon
// begins at the as-of year and ends per the plan assumptions (explicit
// planning horizon, else retire year plus post-retirement span, else a
// ten-year fallback).
//
// The per-year state transition, in order:
//  1. contribution per the investment's strategy
//  2. continuous-compounding growth (e^rate) on balance plus contribution
//  3. withdrawal of withdrawal_rate times the start-of-year balance, once
//     the withdrawal year is reached, capped at the grown balance so the
//     balance can never go negative
//  4. the remainder carries forward as next year's starting balance
//
// Withdrawal series are absent (not zero) before activation so chart
// lines visibly start at the first withdrawal.
func (e *Engine) ProjectInvestment(name string, plan *domain.Plan) domain.InvestmentProjection {
	p := domain.InvestmentProjection{
		Name:               name,
		BeginYear:          e.AsOfYear,
		EndYear:            e.AsOfYear,
		Balance:            domain.Series{},
		Withdrawal:         domain.Series{},
		WithdrawalAfterTax: domain.Series{},
		WithdrawalReal:     domain.Series{},
	}
	inv, ok := plan.Investments[name]
	if !ok {
		return p
	}
	p.EndYear = e.horizonEnd(plan)

	taxRate := NormalizeRate(plan.Assumptions.TaxPercentage)
	inflation := inflationFactor(plan.Assumptions.InflationPercentage)
	growth := growthFactor(NormalizeRate(inv.Rate))
	withdrawalRate := NormalizeRate(inv.WithdrawalRate)
	withdrawalYear, hasWithdrawal := inv.WithdrawalYear()
	strategy := e.contributionStrategyFor(inv, plan)

	balance := inv.Balance
	for year := p.BeginYear; year <= p.EndYear; year++ {
		startBalance := balance
		afterContribution := startBalance.Add(strategy.Contribution(year, startBalance))
		afterGrowth := afterContribution.Mul(growth)

		withdrawal := decimal.Zero
		if hasWithdrawal && year >= withdrawalYear && withdrawalRate.IsPositive() {
			// Withdrawal draws on the start-of-year balance, before
			// contribution and growth, but can never exceed what the
			// grown balance holds.
			withdrawal = startBalance.Mul(withdrawalRate)
			if withdrawal.GreaterThan(afterGrowth) {
				withdrawal = afterGrowth
			}

			offset := decimal.NewFromInt(int64(year - p.BeginYear))
			gross := withdrawal.Div(twelve)
			afterTax := gross.Mul(one.Sub(taxRate))
			real := afterTax.Div(inflation.Pow(offset))
			p.Withdrawal[year] = gross.Round(0)
			p.WithdrawalAfterTax[year] = afterTax.Round(0)
			p.WithdrawalReal[year] = real.Round(0)
		}

		balance = afterGrowth.Sub(withdrawal)
		p.Balance[year] = balance.Round(0)
	}
	return p
}
