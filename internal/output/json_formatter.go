package output

import (
	json "github.com/goccy/go-json"

	"github.com/planwise/retirement-engine/internal/domain"
)

// JSONFormatter serializes the plan result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
