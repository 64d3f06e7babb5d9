package output

import (
	"bytes"
	"fmt"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/planwise/retirement-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Corpus Needed:     %s\n", money.FromDecimal(result.RetirementNeeds.RetirementCorpusNeeded).Compact())
	fmt.Fprintf(&buf, "Projected Savings: %s\n", money.FromDecimal(result.SavingsProjections.TotalProjectedSavings).Compact())
	if result.SavingsProjections.Shortfall.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&buf, "Shortfall:         %s (save %s/month more)\n",
			money.FromDecimal(result.SavingsProjections.Shortfall).Compact(),
			FormatCurrency(result.SavingsProjections.AdditionalMonthlyNeeded))
	} else {
		fmt.Fprintf(&buf, "Surplus:           %s\n", money.FromDecimal(result.SavingsProjections.Surplus).Compact())
	}
	if result.MonteCarloResults.Err == "" {
		fmt.Fprintf(&buf, "Success Rate:      %s over %d trials (risk: %s)\n",
			FormatPercentage(result.MonteCarloResults.SuccessRate),
			result.MonteCarloResults.NumSimulations,
			result.MonteCarloResults.RiskAssessment)
	}
	fmt.Fprintf(&buf, "Readiness Score:   %d/100\n", result.Readiness.Score)
	if len(result.Recommendations) > 0 {
		top := result.Recommendations[0]
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Top Recommendation: %s\n", top.Title)
	}
	return buf.Bytes(), nil
}
