package output

import (
	"bytes"
	"encoding/csv"

	"github.com/planwise/retirement-engine/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per headline metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, err
	}
	rows := [][]string{
		{"YearsToRetirement", intToString(result.RetirementNeeds.YearsToRetirement)},
		{"RetirementYears", intToString(result.RetirementNeeds.RetirementYears)},
		{"FutureAnnualNeed", result.RetirementNeeds.FutureAnnualNeed.StringFixed(2)},
		{"RetirementCorpusNeeded", result.RetirementNeeds.RetirementCorpusNeeded.StringFixed(2)},
		{"TotalProjectedSavings", result.SavingsProjections.TotalProjectedSavings.StringFixed(2)},
		{"Shortfall", result.SavingsProjections.Shortfall.StringFixed(2)},
		{"Surplus", result.SavingsProjections.Surplus.StringFixed(2)},
		{"AdditionalMonthlyNeeded", result.SavingsProjections.AdditionalMonthlyNeeded.StringFixed(2)},
		{"SavingsRatePercentage", result.SavingsProjections.SavingsRatePercentage.StringFixed(2)},
		{"MonteCarloSuccessRate", result.MonteCarloResults.SuccessRate.StringFixed(2)},
		{"MonteCarloTrials", intToString(result.MonteCarloResults.NumSimulations)},
		{"MedianFinalBalance", result.MonteCarloResults.MedianFinalBalance.StringFixed(2)},
		{"RiskAssessment", result.MonteCarloResults.RiskAssessment},
		{"ReadinessScore", intToString(result.Readiness.Score)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
