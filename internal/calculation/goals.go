package calculation

import (
	"fmt"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// assumedGoalReturn is the fixed annual return used when scoring goal
// feasibility, independent of the profile's own return assumption.
var assumedGoalReturn = decimal.NewFromFloat(0.07)

// GoalFeasibilityEvaluator builds age-based savings milestones and checks
// whether individual targets are reachable.
type GoalFeasibilityEvaluator struct {
	Needs  *NeedsCalculator
	Logger Logger
}

// NewGoalFeasibilityEvaluator creates a goal evaluator. A nil logger means no-op.
func NewGoalFeasibilityEvaluator(logger Logger) *GoalFeasibilityEvaluator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &GoalFeasibilityEvaluator{
		Needs:  NewNeedsCalculator(logger),
		Logger: logger,
	}
}

// Milestones returns the salary-multiple savings targets that fall between
// the current age and retirement, plus the final corpus goal. Milestones
// within five years get priority 1.
func (ge *GoalFeasibilityEvaluator) Milestones(profile *domain.Profile) []domain.Milestone {
	milestoneAges := []int{30, 35, 40, 45, 50, 55, 60, profile.RetirementAge}
	multipliers := []int{1, 2, 3, 4, 6, 7, 8, 10}

	var milestones []domain.Milestone
	for i, age := range milestoneAges {
		if age <= profile.CurrentAge || age > profile.RetirementAge {
			continue
		}
		yearsToGoal := age - profile.CurrentAge
		priority := 2
		if yearsToGoal <= 5 {
			priority = 1
		}
		milestones = append(milestones, domain.Milestone{
			GoalName:     fmt.Sprintf("Age %d Milestone", age),
			Description:  fmt.Sprintf("Have %dx annual salary saved by age %d", multipliers[i], age),
			TargetAmount: profile.CurrentAnnualIncome.Mul(decimal.NewFromInt(int64(multipliers[i]))),
			TargetAge:    age,
			YearsToGoal:  yearsToGoal,
			Priority:     priority,
			GoalType:     domain.GoalTypeMilestone,
		})
	}

	needs := ge.Needs.Calculate(profile)
	milestones = append(milestones, domain.Milestone{
		GoalName:     "Retirement Corpus",
		Description:  fmt.Sprintf("Total savings needed for retirement at age %d", profile.RetirementAge),
		TargetAmount: needs.RetirementCorpusNeeded,
		TargetAge:    profile.RetirementAge,
		YearsToGoal:  profile.YearsToRetirement(),
		Priority:     1,
		GoalType:     domain.GoalTypeFinalCorpus,
	})
	return milestones
}

// Feasibility checks whether a savings target is reachable at the current
// contribution level. Projection uses the fixed 7% goal return.
func (ge *GoalFeasibilityEvaluator) Feasibility(goalAmount decimal.Decimal, yearsToGoal int, currentSavings, monthlyContribution decimal.Decimal) domain.GoalFeasibility {
	if yearsToGoal <= 0 {
		return domain.GoalFeasibility{Feasible: false, Reason: "No time remaining"}
	}

	growth := one.Add(assumedGoalReturn).Pow(decimal.NewFromInt(int64(yearsToGoal)))
	currentSavingsFV := currentSavings.Mul(growth)

	annualContribution := monthlyContribution.Mul(twelve)
	contributionsFV := annualContribution.Mul(growth.Sub(one).Div(assumedGoalReturn))

	totalProjected := currentSavingsFV.Add(contributionsFV)
	gap := goalAmount.Sub(totalProjected)

	additionalMonthly := decimal.Zero
	if gap.GreaterThan(decimal.Zero) {
		monthlyRate := assumedGoalReturn.Div(twelve)
		months := decimal.NewFromInt(int64(yearsToGoal * 12))
		additionalMonthly = gap.Mul(monthlyRate).Div(one.Add(monthlyRate).Pow(months).Sub(one))
	}

	successProbability := hundred
	if goalAmount.GreaterThan(decimal.Zero) {
		successProbability = decimal.Min(totalProjected.Div(goalAmount).Mul(hundred), hundred)
	}

	return domain.GoalFeasibility{
		Feasible:                totalProjected.GreaterThanOrEqual(goalAmount),
		ProjectedAmount:         totalProjected,
		Gap:                     decimal.Max(gap, decimal.Zero),
		AdditionalMonthlyNeeded: additionalMonthly,
		SuccessProbability:      successProbability,
	}
}
