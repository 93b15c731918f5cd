package output

import (
	"bytes"
	"encoding/csv"

	"github.com/planfolio/projector/internal/domain"
)

// CSVFormatter emits one row per year of the combined horizon. Years a
// series is not active for produce empty cells, not zeros.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "TotalBalance", "TotalBalanceAfterTax", "TotalBalanceReal", "TotalIncome", "TotalIncomeAfterTax", "TotalIncomeReal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	combined := report.Combined
	for year := combined.BeginYear; year <= combined.EndYear; year++ {
		row := []string{
			intToString(year),
			cell(combined.BalanceGross, year),
			cell(combined.BalanceAfterTax, year),
			cell(combined.BalanceReal, year),
			cell(combined.IncomeGross, year),
			cell(combined.IncomeAfterTax, year),
			cell(combined.IncomeReal, year),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func cell(s domain.Series, year int) string {
	v, ok := s.Get(year)
	if !ok {
		return ""
	}
	return v.StringFixed(0)
}
