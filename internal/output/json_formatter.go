package output

import (
	"encoding/json"

	"github.com/planfolio/projector/internal/domain"
)

// JSONFormatter serializes the full plan report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
