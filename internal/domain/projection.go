package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Series maps a calendar year to a projected amount. A year absent from
// the map means "not yet active" for that series; absent years are never
// summed or interpolated.
type Series map[int]decimal.Decimal

// Get returns the value for a year and whether the series is active there.
func (s Series) Get(year int) (decimal.Decimal, bool) {
	v, ok := s[year]
	return v, ok
}

// Years returns the defined years in ascending order.
func (s Series) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// WageProjection holds the monthly income series for a single wage over
// its horizon: gross, after tax, and after tax in base-year purchasing
// power. Values are rounded to whole currency units.
type WageProjection struct {
	Name      string `json:"name"`
	BeginYear int    `json:"begin_year"`
	EndYear   int    `json:"end_year"`
	Gross     Series `json:"gross"`
	AfterTax  Series `json:"after_tax"`
	Real      Series `json:"real"`
}

// InvestmentProjection holds the end-of-year balance series and, once
// withdrawals activate, the three monthly withdrawal income series.
type InvestmentProjection struct {
	Name               string `json:"name"`
	BeginYear          int    `json:"begin_year"`
	EndYear            int    `json:"end_year"`
	Balance            Series `json:"balance"`
	Withdrawal         Series `json:"withdrawal"`
	WithdrawalAfterTax Series `json:"withdrawal_after_tax"`
	WithdrawalReal     Series `json:"withdrawal_real"`
}

// AnnuityProjection holds the three monthly income series for an annuity,
// absent before its start year.
type AnnuityProjection struct {
	Name      string `json:"name"`
	BeginYear int    `json:"begin_year"`
	EndYear   int    `json:"end_year"`
	Gross     Series `json:"gross"`
	AfterTax  Series `json:"after_tax"`
	Real      Series `json:"real"`
}

// CombinedProjection sums all entity projections over the combined
// horizon. Balances come from investments only; income sums wages,
// investment withdrawals, and annuities. A year is absent from an
// aggregate series only when no contributing entity reported a value.
type CombinedProjection struct {
	BeginYear int `json:"begin_year"`
	EndYear   int `json:"end_year"`

	BalanceGross    Series `json:"balance_gross"`
	BalanceAfterTax Series `json:"balance_after_tax"`
	BalanceReal     Series `json:"balance_real"`

	IncomeGross    Series `json:"income_gross"`
	IncomeAfterTax Series `json:"income_after_tax"`
	IncomeReal     Series `json:"income_real"`
}

// PlanReport bundles every per-entity projection with the aggregate so
// output formatters see the whole picture at once. Entity slices are
// sorted by name for deterministic output.
type PlanReport struct {
	AsOfYear    int                    `json:"as_of_year"`
	Wages       []WageProjection       `json:"wages"`
	Investments []InvestmentProjection `json:"investments"`
	Annuities   []AnnuityProjection    `json:"annuities"`
	Combined    CombinedProjection     `json:"combined"`
}
