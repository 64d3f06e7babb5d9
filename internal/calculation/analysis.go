package calculation

import (
	"fmt"
	"math"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/planwise/retirement-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// PlanAnalyzer provides the standalone what-if calculations that sit outside
// the main plan pipeline: inflation impact, compound growth, required savings
// rate, catch-up strategies, and risk factor ratings.
type PlanAnalyzer struct {
	Logger Logger
}

// NewPlanAnalyzer creates a plan analyzer. A nil logger means no-op.
func NewPlanAnalyzer(logger Logger) *PlanAnalyzer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &PlanAnalyzer{Logger: logger}
}

// InflationImpact quantifies what inflation does to an amount over the given
// number of years: the nominal value that keeps pace, the purchasing power
// that remains, and the erosion between them.
func (pa *PlanAnalyzer) InflationImpact(amount decimal.Decimal, years int, inflationRate decimal.Decimal) domain.InflationImpact {
	factor := one.Add(inflationRate).Pow(decimal.NewFromInt(int64(years)))
	futureNominal := amount.Mul(factor)

	purchasingPower := decimal.Zero
	if !factor.IsZero() {
		purchasingPower = amount.Div(factor)
	}

	erosion := amount.Sub(purchasingPower)
	erosionPct := decimal.Zero
	if amount.GreaterThan(decimal.Zero) {
		erosionPct = erosion.Div(amount).Mul(hundred)
	}

	return domain.InflationImpact{
		OriginalAmount:        amount,
		FutureNominalValue:    futureNominal,
		FuturePurchasingPower: purchasingPower,
		InflationErosion:      erosion,
		ErosionPercentage:     erosionPct,
	}
}

// CompoundGrowth computes the future value of a principal with level annual
// contributions, splitting the result into contributions and growth.
func (pa *PlanAnalyzer) CompoundGrowth(principal, annualRate decimal.Decimal, years int, annualContribution decimal.Decimal) domain.CompoundGrowth {
	yearsDec := decimal.NewFromInt(int64(years))
	totalContributions := annualContribution.Mul(yearsDec)

	var finalValue decimal.Decimal
	if annualRate.IsZero() {
		finalValue = principal.Add(totalContributions)
	} else {
		growth := one.Add(annualRate).Pow(yearsDec)
		finalValue = principal.Mul(growth)
		if annualContribution.GreaterThan(decimal.Zero) {
			finalValue = finalValue.Add(annualContribution.Mul(growth.Sub(one).Div(annualRate)))
		}
	}

	investmentGrowth := finalValue.Sub(principal).Sub(totalContributions)

	totalReturnPct := decimal.Zero
	invested := principal.Add(totalContributions)
	if invested.GreaterThan(decimal.Zero) {
		totalReturnPct = finalValue.Div(invested).Sub(one).Mul(hundred)
	}

	return domain.CompoundGrowth{
		Principal:             principal,
		TotalContributions:    totalContributions,
		InvestmentGrowth:      investmentGrowth,
		FinalValue:            finalValue,
		TotalReturnPercentage: totalReturnPct,
	}
}

// RequiredSavingsRate derives the savings rate needed to fund a retirement
// income goal under the 4% rule. A rate above 50% of income is flagged as
// infeasible. With no years remaining the full additional corpus is due
// immediately.
func (pa *PlanAnalyzer) RequiredSavingsRate(currentIncome, retirementIncomeGoal decimal.Decimal, yearsToRetirement int, currentSavings, returnRate decimal.Decimal) domain.RequiredSavingsRate {
	requiredCorpus := retirementIncomeGoal.Div(decimal.NewFromFloat(0.04))

	yearsDec := decimal.NewFromInt(int64(yearsToRetirement))
	growth := one.Add(returnRate).Pow(yearsDec)
	currentSavingsFV := currentSavings.Mul(growth)
	additionalNeeded := decimal.Max(decimal.Zero, requiredCorpus.Sub(currentSavingsFV))

	var requiredAnnual decimal.Decimal
	switch {
	case yearsToRetirement <= 0:
		requiredAnnual = additionalNeeded
	case returnRate.IsZero():
		requiredAnnual = additionalNeeded.Div(yearsDec)
	default:
		requiredAnnual = additionalNeeded.Mul(returnRate).Div(growth.Sub(one))
	}

	ratePct := decimal.Zero
	if currentIncome.GreaterThan(decimal.Zero) {
		ratePct = requiredAnnual.Div(currentIncome).Mul(hundred)
	}

	return domain.RequiredSavingsRate{
		RequiredCorpus:                requiredCorpus,
		CurrentSavingsFutureValue:     currentSavingsFV,
		AdditionalCorpusNeeded:        additionalNeeded,
		RequiredAnnualSavings:         requiredAnnual,
		RequiredMonthlySavings:        requiredAnnual.Div(twelve),
		RequiredSavingsRatePercentage: ratePct,
		IsFeasible:                    ratePct.LessThanOrEqual(decimal.NewFromInt(50)),
	}
}

// CatchUpStrategies enumerates ways to close a shortfall: saving more, working
// longer, and reducing retirement expenses. Empty when there is no shortfall
// or no time remaining.
func (pa *PlanAnalyzer) CatchUpStrategies(shortfall decimal.Decimal, yearsRemaining int, currentMonthly decimal.Decimal) []domain.CatchUpStrategy {
	if shortfall.LessThanOrEqual(decimal.Zero) || yearsRemaining <= 0 {
		return nil
	}

	var strategies []domain.CatchUpStrategy

	baseline := catchUpMonthly(shortfall, yearsRemaining)
	feasibility := "medium"
	if baseline.LessThan(currentMonthly.Mul(decimal.NewFromFloat(0.5))) {
		feasibility = "high"
	}
	strategies = append(strategies, domain.CatchUpStrategy{
		Strategy:          "Increase Monthly Savings",
		Description:       fmt.Sprintf("Increase monthly contribution by %s", money.FromDecimal(baseline).Grouped()),
		AdditionalMonthly: baseline,
		TotalAdditional:   baseline.Mul(twelve).Mul(decimal.NewFromInt(int64(yearsRemaining))),
		Feasibility:       feasibility,
	})

	for _, extra := range []int{1, 2, 3} {
		extended := catchUpMonthly(shortfall, yearsRemaining+extra)
		feasibility := "medium"
		if extended.LessThan(baseline.Mul(decimal.NewFromFloat(0.7))) {
			feasibility = "high"
		}
		plural := ""
		if extra > 1 {
			plural = "s"
		}
		strategies = append(strategies, domain.CatchUpStrategy{
			Strategy: fmt.Sprintf("Work %d More Year%s", extra, plural),
			Description: fmt.Sprintf("Delay retirement by %d year%s and increase monthly savings by %s",
				extra, plural, money.FromDecimal(extended).Grouped()),
			AdditionalMonthly: extended,
			ExtraYears:        extra,
			Feasibility:       feasibility,
		})
	}

	for _, reduction := range []float64{0.10, 0.15, 0.20} {
		reduced := catchUpMonthly(shortfall.Mul(one.Sub(decimal.NewFromFloat(reduction))), yearsRemaining)
		feasibility := "low"
		if reduction <= 0.15 {
			feasibility = "medium"
		}
		strategies = append(strategies, domain.CatchUpStrategy{
			Strategy: fmt.Sprintf("Reduce Retirement Expenses by %.0f%%", reduction*100),
			Description: fmt.Sprintf("Lower retirement lifestyle expectations and increase monthly savings by %s",
				money.FromDecimal(reduced).Grouped()),
			AdditionalMonthly: reduced,
			ExpenseReduction:  decimal.NewFromFloat(reduction),
			Feasibility:       feasibility,
		})
	}

	return strategies
}

// catchUpMonthly spreads a shortfall over the remaining months, discounted by
// expected 7% growth over half the horizon so early contributions count for
// their future value.
func catchUpMonthly(shortfall decimal.Decimal, years int) decimal.Decimal {
	months := decimal.NewFromInt(int64(years * 12))
	discount := decimal.NewFromFloat(math.Pow(1.07, float64(years)/2))
	return shortfall.Div(months).Div(discount)
}

// RiskFactors rates the plan's exposure on a 1-10 scale per factor, 10 being
// the highest risk. Market conditions are a fixed mid-scale rating since the
// engine holds no market state.
func (pa *PlanAnalyzer) RiskFactors(profile *domain.Profile, savingsRatePct decimal.Decimal) domain.RiskFactorRatings {
	yearsToRetirement := profile.YearsToRetirement()
	retirementYears := profile.RetirementYears()
	returnPct := profile.PreRetirementReturnRate.Mul(hundred)
	inflationPct := profile.InflationRate.Mul(hundred)

	ratings := domain.RiskFactorRatings{MarketConditions: 5}

	switch {
	case yearsToRetirement < 5:
		ratings.TimeHorizon = 9
	case yearsToRetirement < 10:
		ratings.TimeHorizon = 7
	case yearsToRetirement < 20:
		ratings.TimeHorizon = 4
	default:
		ratings.TimeHorizon = 2
	}

	switch {
	case savingsRatePct.LessThan(decimal.NewFromInt(5)):
		ratings.SavingsRate = 9
	case savingsRatePct.LessThan(decimal.NewFromInt(10)):
		ratings.SavingsRate = 6
	case savingsRatePct.LessThan(decimal.NewFromInt(15)):
		ratings.SavingsRate = 3
	default:
		ratings.SavingsRate = 1
	}

	switch {
	case returnPct.GreaterThan(decimal.NewFromInt(10)):
		ratings.ReturnAssumptions = 8
	case returnPct.GreaterThan(decimal.NewFromInt(8)):
		ratings.ReturnAssumptions = 5
	case returnPct.GreaterThan(decimal.NewFromInt(6)):
		ratings.ReturnAssumptions = 3
	default:
		ratings.ReturnAssumptions = 2
	}

	switch {
	case inflationPct.GreaterThan(decimal.NewFromInt(4)):
		ratings.Inflation = 7
	case inflationPct.GreaterThan(decimal.NewFromInt(3)):
		ratings.Inflation = 4
	default:
		ratings.Inflation = 2
	}

	switch {
	case retirementYears > 30:
		ratings.Longevity = 7
	case retirementYears > 25:
		ratings.Longevity = 5
	case retirementYears > 20:
		ratings.Longevity = 3
	default:
		ratings.Longevity = 2
	}

	return ratings
}
