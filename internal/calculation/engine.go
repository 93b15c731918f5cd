package calculation

import (
	"sort"
	"time"

	"github.com/planfolio/projector/internal/domain"
)

// Engine runs all plan projections. Every method is a pure function of
// the plan argument and the engine's as-of year: no shared mutable state,
// no I/O, safe to call concurrently. Invalid numeric input degrades to
// zero and invalid dates to "not yet active" series entries; nothing in
// here returns an error.
type Engine struct {
	// AsOfYear anchors every horizon. Injected rather than read from the
	// wall clock inside the math so projections are deterministic.
	AsOfYear int

	Logger Logger
}

// NewEngine creates an engine anchored at the given year. Pass 0 to use
// the current calendar year.
func NewEngine(asOfYear int) *Engine {
	if asOfYear <= 0 {
		asOfYear = time.Now().Year()
	}
	return &Engine{AsOfYear: asOfYear, Logger: NopLogger{}}
}

// SetLogger sets the logger. A nil logger resets to the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// horizonEnd returns the last projected year for investments and
// annuities: the explicit planning horizon if set, else the retire year
// plus the post-retirement span, else a ten-year fallback. Never before
// the as-of year.
func (e *Engine) horizonEnd(plan *domain.Plan) int {
	a := plan.Assumptions
	end := e.AsOfYear + 10
	if a.PlanningHorizonYears > 0 {
		end = e.AsOfYear + a.PlanningHorizonYears
	} else if retire, ok := a.RetireYear(); ok {
		end = retire + a.YearsAfterRetire
	}
	if end < e.AsOfYear {
		end = e.AsOfYear
	}
	return end
}

// BuildReport runs every projector over the plan and aggregates the
// results. Entities are reported in name order.
func (e *Engine) BuildReport(plan *domain.Plan) *domain.PlanReport {
	report := &domain.PlanReport{
		AsOfYear:    e.AsOfYear,
		Wages:       make([]domain.WageProjection, 0, len(plan.Wages)),
		Investments: make([]domain.InvestmentProjection, 0, len(plan.Investments)),
		Annuities:   make([]domain.AnnuityProjection, 0, len(plan.Annuities)),
	}
	for _, name := range sortedKeys(plan.Wages) {
		report.Wages = append(report.Wages, e.ProjectWage(name, plan))
	}
	for _, name := range sortedKeys(plan.Investments) {
		report.Investments = append(report.Investments, e.ProjectInvestment(name, plan))
	}
	for _, name := range sortedKeys(plan.Annuities) {
		report.Annuities = append(report.Annuities, e.ProjectAnnuity(name, plan))
	}
	report.Combined = e.Aggregate(plan)
	return report
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
