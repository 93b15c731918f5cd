package domain

// ChartPoint is one year of a chart line. A nil Value renders as a gap,
// which is how "not yet active" years stay visible to the chart.
type ChartPoint struct {
	Year  int      `json:"year"`
	Value *float64 `json:"value"`
}

// ChartStyle carries optional styling hints for the charting consumer.
type ChartStyle struct {
	Color  string `json:"color,omitempty"`
	Dashed bool   `json:"dashed,omitempty"`
}

// ChartSeries is a single labeled line: a display name, one point per
// year of the combined horizon, and optional styling hints.
type ChartSeries struct {
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
	Style  ChartStyle   `json:"style,omitempty"`
}

// ChartData is the payload handed to the charting consumer: total balance
// lines (investments only) and total income lines, each in gross,
// after-tax, and inflation-adjusted variants, plus per-entity lines.
type ChartData struct {
	BeginYear     int           `json:"begin_year"`
	EndYear       int           `json:"end_year"`
	BalanceSeries []ChartSeries `json:"balance_series"`
	IncomeSeries  []ChartSeries `json:"income_series"`
}
