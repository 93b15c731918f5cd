package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/internal/domain"
)

// ContributionStrategy determines the annual amount added to an
// investment before growth is applied.
type ContributionStrategy interface {
	Contribution(year int, startBalance decimal.Decimal) decimal.Decimal
	Name() string
}

// NoContribution is the strategy for investments with no contribution
// source, a dangling wage reference, or a zero contribution rate.
type NoContribution struct{}

// Contribution always returns zero.
func (NoContribution) Contribution(year int, startBalance decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// Name returns the name of this strategy
func (NoContribution) Name() string { return "none" }

// WageLinkedContribution contributes a fraction of a wage's projected
// annual income, but only while the wage is still active (the year is at
// or before its stop-work year, or no stop-work year is set).
type WageLinkedContribution struct {
	engine   *Engine
	wage     domain.Wage
	stopYear int
	hasStop  bool
	rate     decimal.Decimal
}

// Contribution returns the wage-linked contribution for a year.
func (c *WageLinkedContribution) Contribution(year int, startBalance decimal.Decimal) decimal.Decimal {
	if c.hasStop && year > c.stopYear {
		return decimal.Zero
	}
	return c.engine.wageAnnualFor(c.wage, year).Mul(c.rate)
}

// Name returns the name of this strategy
func (c *WageLinkedContribution) Name() string { return "from_wage" }

// BalancePercentContribution is the legacy fallback that contributes a
// fraction of the start-of-year balance. It stays dormant unless the
// investment explicitly re-enables it via contribute_from_balance.
type BalancePercentContribution struct {
	rate decimal.Decimal
}

// Contribution returns the balance-derived contribution for a year.
func (c BalancePercentContribution) Contribution(year int, startBalance decimal.Decimal) decimal.Decimal {
	return startBalance.Mul(c.rate)
}

// Name returns the name of this strategy
func (c BalancePercentContribution) Name() string { return "balance_percent" }

// contributionStrategyFor selects the contribution strategy for an
// investment against the plan's wage collection.
func (e *Engine) contributionStrategyFor(inv domain.Investment, plan *domain.Plan) ContributionStrategy {
	rate := NormalizeRate(inv.ContributionRate)
	if !rate.IsPositive() {
		return NoContribution{}
	}
	if inv.ContributeFromBalance {
		return BalancePercentContribution{rate: rate}
	}
	if inv.ContributionsFrom == "" {
		return NoContribution{}
	}
	wage, ok := plan.Wages[inv.ContributionsFrom]
	if !ok {
		// Dangling reference resolves to no contribution.
		e.Logger.Warnf("investment references unknown wage %q; contributions disabled", inv.ContributionsFrom)
		return NoContribution{}
	}
	stop, hasStop := wage.StopYear()
	return &WageLinkedContribution{
		engine:   e,
		wage:     wage,
		stopYear: stop,
		hasStop:  hasStop,
		rate:     rate,
	}
}
