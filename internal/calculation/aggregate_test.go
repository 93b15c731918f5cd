package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfolio/projector/internal/domain"
)

// TestAggregateEmptyPlan pins the documented empty-model behavior: empty
// series anchored at the as-of year, with no iteration and no division.
func TestAggregateEmptyPlan(t *testing.T) {
	engine := NewEngine(2025)
	combined := engine.Aggregate(&domain.Plan{})

	assert.Equal(t, 2025, combined.BeginYear)
	assert.Equal(t, 2025, combined.EndYear)
	assert.Empty(t, combined.BalanceGross)
	assert.Empty(t, combined.BalanceAfterTax)
	assert.Empty(t, combined.BalanceReal)
	assert.Empty(t, combined.IncomeGross)
	assert.Empty(t, combined.IncomeAfterTax)
	assert.Empty(t, combined.IncomeReal)
}

// TestAggregateBalanceCompleteness checks totalBalance[y] equals the sum
// of every investment balance defined at y, across the combined horizon.
func TestAggregateBalanceCompleteness(t *testing.T) {
	plan := &domain.Plan{
		Assumptions: domain.Assumptions{PlanningHorizonYears: 8},
		Investments: map[string]domain.Investment{
			"ira":       {Balance: decimal.NewFromInt(100000), Rate: decimal.NewFromFloat(0.05)},
			"brokerage": {Balance: decimal.NewFromInt(40000), Rate: decimal.NewFromFloat(0.03)},
		},
	}
	engine := NewEngine(2025)
	combined := engine.Aggregate(plan)

	ira := engine.ProjectInvestment("ira", plan)
	brokerage := engine.ProjectInvestment("brokerage", plan)

	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		total, ok := combined.BalanceGross.Get(year)
		require.True(t, ok, "balance must be defined for %d", year)
		a, _ := ira.Balance.Get(year)
		b, _ := brokerage.Balance.Get(year)
		assert.True(t, total.Equal(a.Add(b)), "year %d: %s != %s + %s", year, total, a, b)
	}
}

// TestAggregateTotalDeflation runs every projector and the aggregate
// with -100% inflation: every real series degrades to its after-tax
// counterpart instead of dividing by a zero discount factor.
func TestAggregateTotalDeflation(t *testing.T) {
	plan := &domain.Plan{
		Assumptions: domain.Assumptions{
			TaxPercentage:        decimal.NewFromFloat(0.2),
			InflationPercentage:  decimal.NewFromInt(-100),
			PlanningHorizonYears: 4,
		},
		Wages: map[string]domain.Wage{
			"job": {Annual: decimal.NewFromInt(60000)},
		},
		Investments: map[string]domain.Investment{
			"ira": {
				Balance:        decimal.NewFromInt(100000),
				Rate:           decimal.NewFromFloat(0.05),
				WithdrawalDate: "01/01/2026",
				WithdrawalRate: decimal.NewFromFloat(0.04),
			},
		},
		Annuities: map[string]domain.Annuity{
			"pension": {Monthly: decimal.NewFromInt(1000), StartDate: "01/01/2026"},
		},
	}

	report := NewEngine(2025).BuildReport(plan)
	combined := report.Combined
	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		balanceReal, ok := combined.BalanceReal.Get(year)
		require.True(t, ok, "balance real missing for %d", year)
		balanceAfterTax, _ := combined.BalanceAfterTax.Get(year)
		assert.True(t, balanceReal.Equal(balanceAfterTax), "year %d: %s != %s", year, balanceReal, balanceAfterTax)

		incomeReal, ok := combined.IncomeReal.Get(year)
		require.True(t, ok, "income real missing for %d", year)
		incomeAfterTax, _ := combined.IncomeAfterTax.Get(year)
		assert.True(t, incomeReal.Equal(incomeAfterTax), "year %d: %s != %s", year, incomeReal, incomeAfterTax)
	}
}

// TestAggregateWageStopYearSuppression checks the stop-year rule: the
// wage's income is excluded from the aggregate for the exact year it
// stops, so an annuity starting that year does not double-count.
func TestAggregateWageStopYearSuppression(t *testing.T) {
	plan := &domain.Plan{
		Assumptions: domain.Assumptions{
			PlanningHorizonYears: 5,
			TaxPercentage:        decimal.NewFromFloat(0.2),
		},
		Wages: map[string]domain.Wage{
			"job": {
				Annual:       decimal.NewFromInt(120000),
				StopWorkDate: "12/31/2027",
			},
		},
		Annuities: map[string]domain.Annuity{
			"pension": {
				Monthly:   decimal.NewFromInt(3000),
				StartDate: "01/01/2027",
			},
		},
	}
	engine := NewEngine(2025)
	combined := engine.Aggregate(plan)

	// 2026: wage only, 120000/12 = 10000 monthly.
	income2026, ok := combined.IncomeGross.Get(2026)
	require.True(t, ok)
	assert.True(t, income2026.Equal(decimal.NewFromInt(10000)), "got %s", income2026)

	// 2027: wage suppressed (its own stop year), annuity only.
	income2027, ok := combined.IncomeGross.Get(2027)
	require.True(t, ok)
	assert.True(t, income2027.Equal(decimal.NewFromInt(3000)), "got %s", income2027)

	// 2028: the wage series still spans the planning horizon, so both
	// contribute again past the stop year.
	income2028, ok := combined.IncomeGross.Get(2028)
	require.True(t, ok)
	assert.True(t, income2028.Equal(decimal.NewFromInt(13000)), "got %s", income2028)
}

// TestAggregateNullOnlyWhenNoContributor verifies a year goes absent
// from the aggregate income only when nothing reported a value, and that
// defined contributions treat other entities' absent years as zero.
func TestAggregateNullOnlyWhenNoContributor(t *testing.T) {
	plan := &domain.Plan{
		Assumptions: domain.Assumptions{
			RetireDate:       "12/31/2030",
			YearsAfterRetire: 5,
		},
		Wages: map[string]domain.Wage{
			// Series spans 2025-2026 only (stop year, no planning horizon).
			"job": {Annual: decimal.NewFromInt(60000), StopWorkDate: "12/31/2026"},
		},
		Investments: map[string]domain.Investment{
			"ira": {
				Balance:        decimal.NewFromInt(100000),
				Rate:           decimal.NewFromFloat(0.05),
				WithdrawalDate: "01/01/2031",
				WithdrawalRate: decimal.NewFromFloat(0.04),
			},
		},
	}
	engine := NewEngine(2025)
	combined := engine.Aggregate(plan)

	assert.Equal(t, 2025, combined.BeginYear)
	assert.Equal(t, 2035, combined.EndYear, "max horizon across entities")

	// 2025: wage active, withdrawals not yet: income defined from wage alone.
	income2025, ok := combined.IncomeGross.Get(2025)
	require.True(t, ok)
	assert.True(t, income2025.Equal(decimal.NewFromInt(5000)), "got %s", income2025)

	// 2027-2030: wage series ended, withdrawals not active: no contributor.
	for year := 2027; year <= 2030; year++ {
		_, ok := combined.IncomeGross.Get(year)
		assert.False(t, ok, "income must be absent in %d", year)
	}

	// 2031 on: withdrawals active.
	for year := 2031; year <= 2035; year++ {
		_, ok := combined.IncomeGross.Get(year)
		assert.True(t, ok, "income must be present in %d", year)
	}

	// Balances are defined for the investment's whole horizon regardless.
	for year := 2025; year <= 2035; year++ {
		_, ok := combined.BalanceGross.Get(year)
		assert.True(t, ok, "balance must be present in %d", year)
	}
}

// TestAggregateSuppressedWageAloneLeavesYearAbsent documents the
// suppression edge: when the stopping wage is the only contributor, its
// stop year reports no aggregate income at all rather than zero.
func TestAggregateSuppressedWageAloneLeavesYearAbsent(t *testing.T) {
	plan := &domain.Plan{
		Wages: map[string]domain.Wage{
			"job": {Annual: decimal.NewFromInt(60000), StopWorkDate: "12/31/2026"},
		},
	}
	combined := NewEngine(2025).Aggregate(plan)

	_, ok := combined.IncomeGross.Get(2025)
	assert.True(t, ok)
	_, ok = combined.IncomeGross.Get(2026)
	assert.False(t, ok, "stop year with no other contributors must be absent")
}

// TestAggregateIncomeVariantsSum checks after-tax and real variants sum
// the per-entity rounded series rather than re-deriving from gross.
func TestAggregateIncomeVariantsSum(t *testing.T) {
	plan := &domain.Plan{
		Assumptions: domain.Assumptions{
			PlanningHorizonYears: 2,
			TaxPercentage:        decimal.NewFromFloat(0.2),
			InflationPercentage:  decimal.NewFromFloat(0.02),
		},
		Wages: map[string]domain.Wage{
			"a": {Annual: decimal.NewFromInt(120000)},
			"b": {Annual: decimal.NewFromInt(60000)},
		},
	}
	engine := NewEngine(2025)
	combined := engine.Aggregate(plan)

	pa := engine.ProjectWage("a", plan)
	pb := engine.ProjectWage("b", plan)
	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		wantAfterTax := decimal.Zero
		if v, ok := pa.AfterTax.Get(year); ok {
			wantAfterTax = wantAfterTax.Add(v)
		}
		if v, ok := pb.AfterTax.Get(year); ok {
			wantAfterTax = wantAfterTax.Add(v)
		}
		got, ok := combined.IncomeAfterTax.Get(year)
		require.True(t, ok)
		assert.True(t, got.Equal(wantAfterTax), "year %d: got %s want %s", year, got, wantAfterTax)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	plan := &domain.Plan{
		Assumptions: domain.Assumptions{PlanningHorizonYears: 3},
		Wages: map[string]domain.Wage{
			"job": {Annual: decimal.NewFromInt(90000), Raise: decimal.NewFromFloat(0.02)},
		},
		Investments: map[string]domain.Investment{
			"ira": {Balance: decimal.NewFromInt(10000), Rate: decimal.NewFromFloat(0.04)},
		},
	}
	engine := NewEngine(2025)
	assert.Equal(t, engine.Aggregate(plan), engine.Aggregate(plan))
}
