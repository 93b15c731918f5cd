package domain

import (
	"github.com/shopspring/decimal"

	"github.com/planfolio/projector/pkg/dateutil"
)

// Plan is a read-only snapshot of the user's planning inputs: named entity
// collections plus the global assumption block. Entity names are unique
// within their collection; the edit layer enforces that, not this model.
type Plan struct {
	Assumptions Assumptions           `yaml:"assumptions" json:"assumptions"`
	Wages       map[string]Wage       `yaml:"wages,omitempty" json:"wages,omitempty"`
	Investments map[string]Investment `yaml:"investments,omitempty" json:"investments,omitempty"`
	Annuities   map[string]Annuity    `yaml:"annuities,omitempty" json:"annuities,omitempty"`
}

// Assumptions holds the global planning parameters. Rate fields may arrive
// either as fractions (0.05) or whole percentages (5); they are normalized
// at calculation time, not here.
type Assumptions struct {
	TaxPercentage        decimal.Decimal `yaml:"tax_percentage" json:"tax_percentage"`
	InflationPercentage  decimal.Decimal `yaml:"inflation_percentage" json:"inflation_percentage"`
	RetireDate           string          `yaml:"retire_date,omitempty" json:"retire_date,omitempty"`
	YearsAfterRetire     int             `yaml:"years_after_retire,omitempty" json:"years_after_retire,omitempty"`
	PlanningHorizonYears int             `yaml:"planning_horizon_years,omitempty" json:"planning_horizon_years,omitempty"`
}

// RetireYear returns the calendar year of the retire date, if one is set
// and parseable.
func (a Assumptions) RetireYear() (int, bool) {
	return dateutil.YearOf(a.RetireDate)
}

// Wage is an income source that grows by an annual raise until work stops.
type Wage struct {
	Annual       decimal.Decimal `yaml:"annual" json:"annual"`
	Raise        decimal.Decimal `yaml:"raise,omitempty" json:"raise,omitempty"`
	StopWorkDate string          `yaml:"stop_work_date,omitempty" json:"stop_work_date,omitempty"`
}

// StopYear returns the calendar year work stops. False means no stop date
// is set (or it is malformed), in which case the wage never deactivates.
func (w Wage) StopYear() (int, bool) {
	return dateutil.YearOf(w.StopWorkDate)
}

// Investment is a balance that compounds continuously, optionally receives
// contributions from a named wage, and pays out once withdrawals activate.
// ContributionsFrom is a non-owning reference into the wage collection; a
// dangling name resolves to no contribution.
type Investment struct {
	Balance           decimal.Decimal `yaml:"balance" json:"balance"`
	Rate              decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
	WithdrawalDate    string          `yaml:"withdrawal_date,omitempty" json:"withdrawal_date,omitempty"`
	WithdrawalRate    decimal.Decimal `yaml:"withdrawal_rate,omitempty" json:"withdrawal_rate,omitempty"`
	ContributionsFrom string          `yaml:"contributions_from,omitempty" json:"contributions_from,omitempty"`
	ContributionRate  decimal.Decimal `yaml:"contribution_rate,omitempty" json:"contribution_rate,omitempty"`

	// ContributeFromBalance re-enables the legacy fallback that derives the
	// contribution from a percentage of the running balance instead of a
	// wage. Off unless explicitly set.
	ContributeFromBalance bool `yaml:"contribute_from_balance,omitempty" json:"contribute_from_balance,omitempty"`
}

// WithdrawalYear returns the calendar year withdrawals may begin.
func (inv Investment) WithdrawalYear() (int, bool) {
	return dateutil.YearOf(inv.WithdrawalDate)
}

// Annuity is a fixed monthly income that begins at a start date.
type Annuity struct {
	Monthly   decimal.Decimal `yaml:"monthly" json:"monthly"`
	StartDate string          `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// StartYear returns the calendar year payments begin. False means the
// annuity never activates.
func (an Annuity) StartYear() (int, bool) {
	return dateutil.YearOf(an.StartDate)
}

// IsEmpty reports whether the plan has no entities in any collection.
func (p *Plan) IsEmpty() bool {
	return len(p.Wages) == 0 && len(p.Investments) == 0 && len(p.Annuities) == 0
}
