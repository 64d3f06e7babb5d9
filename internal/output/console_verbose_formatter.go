package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "RETIREMENT PLAN ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Calculation ID: %s\n", result.Metadata.CalculationID)
	fmt.Fprintf(&buf, "Outcome:        %s (%d ms)\n", result.Metadata.Outcome, result.Metadata.DurationMs)
	fmt.Fprintln(&buf)

	writeNeedsSection(&buf, result)
	writeProjectionSection(&buf, result)
	writeMonteCarloSection(&buf, result)
	writeStrategiesSection(&buf, result)
	writeSensitivitySection(&buf, result)
	writeTaxSection(&buf, result)
	writeMilestonesSection(&buf, result)
	writeReadinessSection(&buf, result)
	writeMessagesSection(&buf, result)

	return buf.Bytes(), nil
}

func writeNeedsSection(buf *bytes.Buffer, result *domain.PlanResult) {
	needs := result.RetirementNeeds
	fmt.Fprintln(buf, "RETIREMENT NEEDS")
	fmt.Fprintln(buf, "================")
	fmt.Fprintf(buf, "%-35s %15s\n", "Desired Annual Income (today):", FormatCurrency(needs.DesiredAnnualIncomeToday))
	fmt.Fprintf(buf, "%-35s %15s\n", "Net Need After Social Security:", FormatCurrency(needs.NetIncomeNeeded))
	fmt.Fprintf(buf, "%-35s %15s\n", "Annual Need At Retirement:", FormatCurrency(needs.FutureAnnualNeed))
	fmt.Fprintf(buf, "%-35s %15s\n", "Retirement Corpus Needed:", FormatCurrency(needs.RetirementCorpusNeeded))
	fmt.Fprintf(buf, "%-35s %15d\n", "Years To Retirement:", needs.YearsToRetirement)
	fmt.Fprintf(buf, "%-35s %15d\n", "Years In Retirement:", needs.RetirementYears)
	fmt.Fprintln(buf)
}

func writeProjectionSection(buf *bytes.Buffer, result *domain.PlanResult) {
	proj := result.SavingsProjections
	fmt.Fprintln(buf, "SAVINGS PROJECTION")
	fmt.Fprintln(buf, "==================")
	fmt.Fprintf(buf, "%-35s %15s\n", "Current Savings Grow To:", FormatCurrency(proj.CurrentSavingsFutureValue))
	fmt.Fprintf(buf, "%-35s %15s\n", "Future Contributions Grow To:", FormatCurrency(proj.ContributionsFutureValue))
	fmt.Fprintf(buf, "%-35s %15s\n", "Total Projected Savings:", FormatCurrency(proj.TotalProjectedSavings))
	fmt.Fprintf(buf, "%-35s %15s\n", "Corpus Needed:", FormatCurrency(proj.CorpusNeeded))
	fmt.Fprintln(buf, strings.Repeat("-", 51))
	if proj.Shortfall.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "%-35s %15s\n", "SHORTFALL:", FormatCurrency(proj.Shortfall))
		fmt.Fprintf(buf, "%-35s %15s\n", "Additional Monthly Needed:", FormatCurrency(proj.AdditionalMonthlyNeeded))
	} else {
		fmt.Fprintf(buf, "%-35s %15s\n", "SURPLUS:", FormatCurrency(proj.Surplus))
	}
	fmt.Fprintf(buf, "%-35s %15s\n", "Effective Monthly Contribution:", FormatCurrency(proj.EffectiveMonthlyContribution))
	fmt.Fprintf(buf, "%-35s %15s\n", "Current Savings Rate:", FormatPercentage(proj.SavingsRatePercentage))
	fmt.Fprintln(buf)
}

func writeMonteCarloSection(buf *bytes.Buffer, result *domain.PlanResult) {
	mc := result.MonteCarloResults
	fmt.Fprintf(buf, "MONTE CARLO SIMULATION (%d trials)\n", mc.NumSimulations)
	fmt.Fprintln(buf, "==================================")
	if mc.Err != "" {
		fmt.Fprintf(buf, "Simulation skipped: %s\n", mc.Err)
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "%-35s %15s\n", "Success Rate:", FormatPercentage(mc.SuccessRate))
	fmt.Fprintf(buf, "%-35s %15s\n", "Scenarios Succeeded:", fmt.Sprintf("%d of %d", mc.ScenariosSucceeded, mc.NumSimulations))
	fmt.Fprintf(buf, "%-35s %15s\n", "Average Final Balance:", FormatCurrency(mc.AverageFinalBalance))
	fmt.Fprintf(buf, "%-35s %15s\n", "Median Final Balance:", FormatCurrency(mc.MedianFinalBalance))
	fmt.Fprintf(buf, "%-35s %15s\n", "10th Percentile (pessimistic):", FormatCurrency(mc.Percentile10))
	fmt.Fprintf(buf, "%-35s %15s\n", "90th Percentile (optimistic):", FormatCurrency(mc.Percentile90))
	fmt.Fprintf(buf, "%-35s %15s\n", "Risk Assessment:", mc.RiskAssessment)
	fmt.Fprintln(buf)
}

func writeStrategiesSection(buf *bytes.Buffer, result *domain.PlanResult) {
	if len(result.WithdrawalStrategies) == 0 {
		return
	}
	fmt.Fprintln(buf, "WITHDRAWAL STRATEGIES")
	fmt.Fprintln(buf, "=====================")
	for i, strategy := range result.WithdrawalStrategies {
		details := strategy.Details()
		fmt.Fprintf(buf, "%d. %s (est. success rate %d%%)\n", i+1, details.Name, details.SuccessRate)
		fmt.Fprintf(buf, "   %s\n", details.Description)
		switch s := strategy.(type) {
		case domain.FourPercentRule:
			fmt.Fprintf(buf, "   Initial Annual Withdrawal: %s\n", FormatCurrency(s.InitialWithdrawal))
			fmt.Fprintf(buf, "   Designed To Sustain:       %d years\n", s.SustainabilityYears)
		case domain.DynamicWithdrawal:
			fmt.Fprintf(buf, "   Initial Withdrawal Rate:   %s\n", FormatRate(s.InitialWithdrawalRate))
			fmt.Fprintf(buf, "   Adjustment Mechanism:      %s\n", s.AdjustmentMechanism)
		case domain.BondLadder:
			fmt.Fprintf(buf, "   Required Corpus:           %s\n", FormatCurrency(s.RequiredCorpus))
			fmt.Fprintf(buf, "   Annual Ladder Income:      %s\n", FormatCurrency(s.AnnualIncome))
		case domain.BucketStrategy:
			alloc := s.BucketAllocation
			fmt.Fprintf(buf, "   Short Term:  %d%% / %d yrs (%s)\n", alloc.ShortTerm.Percentage, alloc.ShortTerm.Years, alloc.ShortTerm.Investments)
			fmt.Fprintf(buf, "   Medium Term: %d%% / %d yrs (%s)\n", alloc.MediumTerm.Percentage, alloc.MediumTerm.Years, alloc.MediumTerm.Investments)
			fmt.Fprintf(buf, "   Long Term:   %d%% / %d yrs (%s)\n", alloc.LongTerm.Percentage, alloc.LongTerm.Years, alloc.LongTerm.Investments)
		}
		for _, pro := range details.Pros {
			fmt.Fprintf(buf, "   + %s\n", pro)
		}
		for _, con := range details.Cons {
			fmt.Fprintf(buf, "   - %s\n", con)
		}
		fmt.Fprintln(buf)
	}
}

func writeSensitivitySection(buf *bytes.Buffer, result *domain.PlanResult) {
	if len(result.SensitivityAnalysis) == 0 {
		return
	}
	fmt.Fprintln(buf, "SENSITIVITY ANALYSIS")
	fmt.Fprintln(buf, "====================")
	variables := make([]string, 0, len(result.SensitivityAnalysis))
	for name := range result.SensitivityAnalysis {
		variables = append(variables, name)
	}
	sort.Strings(variables)
	for _, name := range variables {
		fmt.Fprintf(buf, "%s:\n", strings.ToUpper(strings.ReplaceAll(name, "_", " ")))
		fmt.Fprintf(buf, "  %-12s %18s %18s %12s\n", "Change", "Projected", "Gap Change", "% Change")
		for _, point := range result.SensitivityAnalysis[name] {
			fmt.Fprintf(buf, "  %-12s %18s %18s %12s\n",
				signedChange(point.Change),
				FormatCurrency(point.TotalProjected),
				FormatCurrency(point.GapChange),
				FormatPercentage(point.PercentageChange),
			)
		}
		fmt.Fprintln(buf)
	}
}

// signedChange prints sweep deltas with an explicit sign so the baseline-relative
// direction is readable in a column.
func signedChange(change decimal.Decimal) string {
	if change.GreaterThan(decimal.Zero) {
		return "+" + change.String()
	}
	return change.String()
}

func writeTaxSection(buf *bytes.Buffer, result *domain.PlanResult) {
	tax := result.TaxAnalysis
	fmt.Fprintln(buf, "TAX ANALYSIS")
	fmt.Fprintln(buf, "============")
	fmt.Fprintf(buf, "%-35s %15s\n", "Current Marginal Rate:", FormatRate(tax.CurrentTaxRate))
	fmt.Fprintf(buf, "%-35s %15s\n", "Expected Retirement Rate:", FormatRate(tax.RetirementTaxRate))
	fmt.Fprintf(buf, "%-35s %15s\n", "Annual Contribution Tax Savings:", FormatCurrency(tax.AnnualContributionTaxSavings))
	fmt.Fprintf(buf, "%-35s %15s\n", "Annual Retirement Tax Burden:", FormatCurrency(tax.AnnualRetirementTaxBurden))
	for _, rec := range tax.Recommendations {
		fmt.Fprintf(buf, "• %s\n", rec)
	}
	fmt.Fprintln(buf)
}

func writeMilestonesSection(buf *bytes.Buffer, result *domain.PlanResult) {
	if len(result.Milestones) == 0 {
		return
	}
	fmt.Fprintln(buf, "SAVINGS MILESTONES")
	fmt.Fprintln(buf, "==================")
	fmt.Fprintf(buf, "%-8s %-30s %15s %10s\n", "Age", "Goal", "Target", "Years")
	fmt.Fprintln(buf, strings.Repeat("-", 66))
	for _, m := range result.Milestones {
		fmt.Fprintf(buf, "%-8d %-30s %15s %10d\n", m.TargetAge, m.GoalName, FormatCurrency(m.TargetAmount), m.YearsToGoal)
	}
	fmt.Fprintln(buf)
}

func writeReadinessSection(buf *bytes.Buffer, result *domain.PlanResult) {
	fmt.Fprintln(buf, "RETIREMENT READINESS")
	fmt.Fprintln(buf, "====================")
	fmt.Fprintf(buf, "Overall Score: %d/100\n", result.Readiness.Score)
	fmt.Fprintf(buf, "  Time Horizon:  %s\n", result.Readiness.TimeScore.StringFixed(1))
	fmt.Fprintf(buf, "  Savings Rate:  %s\n", result.Readiness.SavingsScore.StringFixed(1))
	fmt.Fprintf(buf, "  Progress:      %s\n", result.Readiness.ProgressScore.StringFixed(1))
	fmt.Fprintf(buf, "  Monte Carlo:   %s\n", result.Readiness.MonteCarloScore.StringFixed(1))
	fmt.Fprintf(buf, "  Employer Match: %s\n", result.Readiness.MatchScore.StringFixed(1))
	fmt.Fprintln(buf)
	if len(result.Recommendations) > 0 {
		fmt.Fprintln(buf, "RECOMMENDATIONS")
		fmt.Fprintln(buf, "===============")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(buf, "%d. [%s] %s\n", i+1, strings.ToUpper(rec.Type), rec.Title)
			fmt.Fprintf(buf, "   %s\n", rec.Description)
			for _, item := range rec.ActionItems {
				fmt.Fprintf(buf, "   • %s\n", item)
			}
		}
		fmt.Fprintln(buf)
	}
}

func writeMessagesSection(buf *bytes.Buffer, result *domain.PlanResult) {
	if len(result.Messages) == 0 {
		return
	}
	fmt.Fprintln(buf, "MESSAGES")
	fmt.Fprintln(buf, "========")
	for _, msg := range result.Messages {
		fmt.Fprintf(buf, "[%s] %s: %s\n", msg.Level, msg.Code, msg.Message)
	}
	fmt.Fprintln(buf)
}
