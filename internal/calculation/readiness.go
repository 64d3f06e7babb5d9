package calculation

import (
	"fmt"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/planwise/retirement-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// ReadinessScorer produces the 0-100 composite readiness score and the
// prioritized recommendation list.
type ReadinessScorer struct {
	Logger Logger
}

// NewReadinessScorer creates a readiness scorer. A nil logger means no-op.
func NewReadinessScorer(logger Logger) *ReadinessScorer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &ReadinessScorer{Logger: logger}
}

// Score weighs five components: time horizon (20 points at 30+ years),
// savings rate (25 points at 15%+), progress toward the corpus (25 points),
// Monte Carlo success (20 points), and employer match availability (10 or 5).
// The total is truncated to an integer and capped at 100.
func (rs *ReadinessScorer) Score(profile *domain.Profile, needs domain.RetirementNeeds, projection domain.SavingsProjection, monteCarlo domain.MonteCarloResult) domain.ReadinessScore {
	twenty := decimal.NewFromInt(20)
	twentyFive := decimal.NewFromInt(25)

	timeScore := decimal.Min(
		decimal.NewFromInt(int64(needs.YearsToRetirement)).Div(decimal.NewFromInt(30)).Mul(twenty),
		twenty)

	savingsScore := decimal.Min(
		projection.SavingsRatePercentage.Div(decimal.NewFromInt(15)).Mul(twentyFive),
		twentyFive)

	progressScore := twentyFive
	if needs.RetirementCorpusNeeded.GreaterThan(decimal.Zero) {
		progressScore = decimal.Min(
			projection.TotalProjectedSavings.Div(needs.RetirementCorpusNeeded).Mul(twentyFive),
			twentyFive)
	}

	monteCarloScore := monteCarlo.SuccessRate.Div(hundred).Mul(twenty)

	matchScore := decimal.NewFromInt(5)
	if profile.EmployerMatchRate.GreaterThan(decimal.Zero) {
		matchScore = decimal.NewFromInt(10)
	}

	total := timeScore.Add(savingsScore).Add(progressScore).Add(monteCarloScore).Add(matchScore)
	score := int(total.IntPart())
	if score > 100 {
		score = 100
	}

	rs.Logger.Debugf("readiness score %d (time %s, savings %s, progress %s, mc %s, match %s)",
		score, timeScore.StringFixed(1), savingsScore.StringFixed(1),
		progressScore.StringFixed(1), monteCarloScore.StringFixed(1), matchScore.StringFixed(0))

	return domain.ReadinessScore{
		Score:           score,
		TimeScore:       timeScore,
		SavingsScore:    savingsScore,
		ProgressScore:   progressScore,
		MonteCarloScore: monteCarloScore,
		MatchScore:      matchScore,
	}
}

// Recommendations returns up to five prioritized actions: closing the
// shortfall, improving the Monte Carlo success rate, capturing unclaimed
// employer match, and catch-up contributions for those 50 and over.
func (rs *ReadinessScorer) Recommendations(profile *domain.Profile, projection domain.SavingsProjection, monteCarlo domain.MonteCarloResult) []domain.Recommendation {
	var recs []domain.Recommendation

	if projection.Shortfall.GreaterThan(decimal.Zero) {
		shortfall := money.FromDecimal(projection.Shortfall).Grouped()
		additional := money.FromDecimal(projection.AdditionalMonthlyNeeded)
		recs = append(recs, domain.Recommendation{
			Type:  "critical",
			Title: "Increase Retirement Savings",
			Description: fmt.Sprintf("You have a %s retirement shortfall. Consider increasing monthly contributions by %s.",
				shortfall, additional.Grouped()),
			ActionItems: []string{
				fmt.Sprintf("Increase monthly contribution by %s (%s per year)",
					additional.Grouped(), additional.Annual().Grouped()),
				"Review budget for potential savings opportunities",
				"Consider working 1-2 additional years if feasible",
			},
			Priority: 1,
		})
	}

	if monteCarlo.SuccessRate.LessThan(decimal.NewFromInt(75)) {
		recs = append(recs, domain.Recommendation{
			Type:  "high",
			Title: "Improve Retirement Success Probability",
			Description: fmt.Sprintf("Your retirement plan has a %s%% success rate. Consider risk reduction strategies.",
				monteCarlo.SuccessRate.StringFixed(1)),
			ActionItems: []string{
				"Increase savings rate",
				"Consider more conservative withdrawal rate",
				"Diversify investment portfolio",
				"Plan for part-time work in early retirement",
			},
			Priority: 2,
		})
	}

	if profile.EmployerMatchRate.GreaterThan(decimal.Zero) {
		matchableIncome := profile.CurrentAnnualIncome.Mul(profile.EmployerMatchLimit)
		maxMatch := matchableIncome.Mul(profile.EmployerMatchRate)
		currentMatch := decimal.Min(profile.AnnualContribution(), matchableIncome).Mul(profile.EmployerMatchRate)
		if currentMatch.LessThan(maxMatch) {
			recs = append(recs, domain.Recommendation{
				Type:  "medium",
				Title: "Maximize Employer Match",
				Description: fmt.Sprintf("You're missing %s in free employer matching.",
					money.FromDecimal(maxMatch).Sub(money.FromDecimal(currentMatch)).Grouped()),
				ActionItems: []string{
					fmt.Sprintf("Increase 401(k) contribution to at least %s%% of salary",
						profile.EmployerMatchLimit.Mul(hundred).StringFixed(0)),
					"This is free money from your employer",
				},
				Priority: 1,
			})
		}
	}

	if profile.CurrentAge >= 50 {
		recs = append(recs, domain.Recommendation{
			Type:        "medium",
			Title:       "Utilize Catch-Up Contributions",
			Description: "You're eligible for catch-up contributions to retirement accounts.",
			ActionItems: []string{
				"Consider additional $7,500 401(k) catch-up contribution",
				"Consider additional $1,000 IRA catch-up contribution",
				"Review if higher contribution limits fit your budget",
			},
			Priority: 2,
		})
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
