package main

import (
	"fmt"
	"os"

	calc "github.com/planfolio/projector/internal/calculation"
	"github.com/planfolio/projector/internal/config"
	"github.com/planfolio/projector/internal/domain"
)

func cell(s domain.Series, year int) string {
	v, ok := s.Get(year)
	if !ok {
		return "-"
	}
	return v.StringFixed(0)
}

func main() {
	parser := config.NewPlanParser()
	plan := parser.ExamplePlan()
	if len(os.Args) >= 2 {
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		plan = loaded
	}

	engine := calc.NewEngine(0)
	report := engine.BuildReport(plan)

	combined := report.Combined
	fmt.Printf("as_of=%d horizon=%d-%d\n", report.AsOfYear, combined.BeginYear, combined.EndYear)
	fmt.Println("Year,Balance,BalanceReal,Income,IncomeReal")
	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		fmt.Printf("%d,%s,%s,%s,%s\n", year,
			cell(combined.BalanceGross, year),
			cell(combined.BalanceReal, year),
			cell(combined.IncomeGross, year),
			cell(combined.IncomeReal, year))
	}

	for _, inv := range report.Investments {
		fmt.Printf("\ninvestment %q\n", inv.Name)
		for _, year := range inv.Balance.Years() {
			fmt.Printf("%d,%s,%s\n", year, cell(inv.Balance, year), cell(inv.Withdrawal, year))
		}
	}
}
