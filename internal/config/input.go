package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/planfolio/projector/internal/domain"
	"github.com/planfolio/projector/pkg/dateutil"
)

// PlanParser handles loading of plan files.
type PlanParser struct{}

// NewPlanParser creates a new plan parser
func NewPlanParser() *PlanParser {
	return &PlanParser{}
}

// LoadFromFile loads a plan from a YAML file.
func (pp *PlanParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return pp.Load(data)
}

// Load parses and validates a YAML plan document.
func (pp *PlanParser) Load(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := pp.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan rejects only input no editing UI would produce. The
// projection core tolerates everything else by degrading to zero, so
// validation here stays deliberately thin: required-field and
// date-format enforcement belongs to the form layer, not this loader.
func (pp *PlanParser) ValidatePlan(plan *domain.Plan) error {
	for name, wage := range plan.Wages {
		if wage.Annual.LessThan(decimal.Zero) {
			return fmt.Errorf("wage %q: annual amount cannot be negative", name)
		}
	}
	for name, inv := range plan.Investments {
		if inv.Balance.LessThan(decimal.Zero) {
			return fmt.Errorf("investment %q: balance cannot be negative", name)
		}
	}
	for name, annuity := range plan.Annuities {
		if annuity.Monthly.LessThan(decimal.Zero) {
			return fmt.Errorf("annuity %q: monthly amount cannot be negative", name)
		}
	}
	if plan.Assumptions.PlanningHorizonYears < 0 {
		return fmt.Errorf("planning horizon years cannot be negative")
	}
	if plan.Assumptions.YearsAfterRetire < 0 {
		return fmt.Errorf("years after retire cannot be negative")
	}
	return nil
}

// Lint reports non-fatal issues the core will silently degrade around:
// dangling wage references and malformed dates. Callers surface these
// as warnings only.
func (pp *PlanParser) Lint(plan *domain.Plan) []string {
	var warnings []string
	for name, inv := range plan.Investments {
		if inv.ContributionsFrom != "" {
			if _, ok := plan.Wages[inv.ContributionsFrom]; !ok {
				warnings = append(warnings, fmt.Sprintf("investment %q references unknown wage %q; contributions will be skipped", name, inv.ContributionsFrom))
			}
		}
		if inv.WithdrawalDate != "" {
			if _, ok := dateutil.YearOf(inv.WithdrawalDate); !ok {
				warnings = append(warnings, fmt.Sprintf("investment %q: withdrawal date %q is not MM/DD/YYYY; withdrawals will never activate", name, inv.WithdrawalDate))
			}
		}
	}
	for name, wage := range plan.Wages {
		if wage.StopWorkDate != "" {
			if _, ok := dateutil.YearOf(wage.StopWorkDate); !ok {
				warnings = append(warnings, fmt.Sprintf("wage %q: stop work date %q is not MM/DD/YYYY; the wage will never deactivate", name, wage.StopWorkDate))
			}
		}
	}
	for name, annuity := range plan.Annuities {
		if annuity.StartDate != "" {
			if _, ok := dateutil.YearOf(annuity.StartDate); !ok {
				warnings = append(warnings, fmt.Sprintf("annuity %q: start date %q is not MM/DD/YYYY; the annuity will never activate", name, annuity.StartDate))
			}
		}
	}
	return warnings
}

// ExamplePlan creates a starter plan with one entity per collection.
func (pp *PlanParser) ExamplePlan() *domain.Plan {
	return &domain.Plan{
		Assumptions: domain.Assumptions{
			TaxPercentage:       decimal.NewFromFloat(0.2),
			InflationPercentage: decimal.NewFromFloat(0.02),
			RetireDate:          "12/31/2030",
			YearsAfterRetire:    25,
		},
		Wages: map[string]domain.Wage{
			"day job": {
				Annual:       decimal.NewFromInt(120000),
				Raise:        decimal.NewFromFloat(0.03),
				StopWorkDate: "12/31/2030",
			},
		},
		Investments: map[string]domain.Investment{
			"401k": {
				Balance:           decimal.NewFromInt(250000),
				Rate:              decimal.NewFromFloat(0.05),
				WithdrawalDate:    "01/01/2031",
				WithdrawalRate:    decimal.NewFromFloat(0.04),
				ContributionsFrom: "day job",
				ContributionRate:  decimal.NewFromFloat(0.1),
			},
		},
		Annuities: map[string]domain.Annuity{
			"pension": {
				Monthly:   decimal.NewFromInt(1800),
				StartDate: "01/01/2031",
			},
		},
	}
}

// WriteExamplePlan writes the starter plan as YAML to the given path.
func (pp *PlanParser) WriteExamplePlan(path string) error {
	data, err := yaml.Marshal(pp.ExamplePlan())
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
