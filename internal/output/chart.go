package output

import (
	"github.com/goccy/go-json"

	"github.com/planfolio/projector/internal/domain"
)

// ChartFormatter emits the payload the charting consumer expects:
// labeled series with one point per year of the combined horizon, a nil
// value where a series is not yet active, and styling hints.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	return json.Marshal(BuildChartData(report))
}

// Palette cycled through for per-entity lines.
var palette = []string{"#4e79a7", "#f28e2b", "#59a14f", "#e15759", "#b07aa1", "#76b7b2"}

// BuildChartData converts a plan report into the chart payload. It is
// shared by the chart formatter and the HTTP projection endpoint.
func BuildChartData(report *domain.PlanReport) domain.ChartData {
	combined := report.Combined
	data := domain.ChartData{
		BeginYear: combined.BeginYear,
		EndYear:   combined.EndYear,
	}

	data.BalanceSeries = append(data.BalanceSeries,
		chartLine("Total balance", combined.BeginYear, combined.EndYear, combined.BalanceGross, domain.ChartStyle{Color: "#1f2a44"}),
		chartLine("Total balance (after tax)", combined.BeginYear, combined.EndYear, combined.BalanceAfterTax, domain.ChartStyle{Color: "#1f2a44", Dashed: true}),
		chartLine("Total balance (real)", combined.BeginYear, combined.EndYear, combined.BalanceReal, domain.ChartStyle{Color: "#8a93a6", Dashed: true}),
	)
	data.IncomeSeries = append(data.IncomeSeries,
		chartLine("Total income", combined.BeginYear, combined.EndYear, combined.IncomeGross, domain.ChartStyle{Color: "#2e6f40"}),
		chartLine("Total income (after tax)", combined.BeginYear, combined.EndYear, combined.IncomeAfterTax, domain.ChartStyle{Color: "#2e6f40", Dashed: true}),
		chartLine("Total income (real)", combined.BeginYear, combined.EndYear, combined.IncomeReal, domain.ChartStyle{Color: "#87a96b", Dashed: true}),
	)

	color := 0
	nextColor := func() string {
		c := palette[color%len(palette)]
		color++
		return c
	}
	for _, inv := range report.Investments {
		data.BalanceSeries = append(data.BalanceSeries,
			chartLine(inv.Name, combined.BeginYear, combined.EndYear, inv.Balance, domain.ChartStyle{Color: nextColor()}))
	}
	for _, w := range report.Wages {
		data.IncomeSeries = append(data.IncomeSeries,
			chartLine(w.Name, combined.BeginYear, combined.EndYear, w.Gross, domain.ChartStyle{Color: nextColor()}))
	}
	for _, inv := range report.Investments {
		data.IncomeSeries = append(data.IncomeSeries,
			chartLine(inv.Name+" withdrawals", combined.BeginYear, combined.EndYear, inv.Withdrawal, domain.ChartStyle{Color: nextColor()}))
	}
	for _, an := range report.Annuities {
		data.IncomeSeries = append(data.IncomeSeries,
			chartLine(an.Name, combined.BeginYear, combined.EndYear, an.Gross, domain.ChartStyle{Color: nextColor()}))
	}
	return data
}

// chartLine spreads a series over the full horizon, with explicit nil
// points where the series is absent so chart lines start and gap
// correctly.
func chartLine(label string, begin, end int, s domain.Series, style domain.ChartStyle) domain.ChartSeries {
	line := domain.ChartSeries{
		Label:  label,
		Points: make([]domain.ChartPoint, 0, end-begin+1),
		Style:  style,
	}
	for year := begin; year <= end; year++ {
		point := domain.ChartPoint{Year: year}
		if v, ok := s.Get(year); ok {
			f := v.InexactFloat64()
			point.Value = &f
		}
		line.Points = append(line.Points, point)
	}
	return line
}
