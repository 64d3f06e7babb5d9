package calculation

import (
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATE ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2024 brackets, single filer
//    - No inflation indexing applied to future years
//    - No standard deduction applied
//    - The bracket rate is applied to the whole income as a flat estimate,
//      not blended marginally
//
// 2. Social Security: 85% of the benefit is treated as taxable income
//
// 3. Contribution tax savings assume fully deductible traditional
//    contributions at the current bracket rate

// TaxBracket is one federal bracket: incomes up to Max are rated at Rate.
type TaxBracket struct {
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// TaxEstimator produces the simplified current-vs-retirement tax comparison.
type TaxEstimator struct {
	Brackets []TaxBracket
	TopRate  decimal.Decimal
	Logger   Logger
}

// NewTaxEstimator creates a tax estimator with the 2024 single-filer brackets.
// A nil logger means no-op.
func NewTaxEstimator(logger Logger) *TaxEstimator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &TaxEstimator{
		Brackets: []TaxBracket{
			{decimal.NewFromInt(11000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(44725), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(95375), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(182050), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(231250), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(578125), decimal.NewFromFloat(0.35)},
		},
		TopRate: decimal.NewFromFloat(0.37),
		Logger:  logger,
	}
}

// EstimateRate returns the bracket rate for an income level.
func (te *TaxEstimator) EstimateRate(income decimal.Decimal) decimal.Decimal {
	for _, bracket := range te.Brackets {
		if income.LessThanOrEqual(bracket.Max) {
			return bracket.Rate
		}
	}
	return te.TopRate
}

// Analyze compares the tax position today against the expected position in
// retirement and derives bracket-based planning recommendations.
func (te *TaxEstimator) Analyze(profile *domain.Profile) domain.TaxAnalysis {
	currentIncome := profile.CurrentAnnualIncome
	retirementIncome := profile.DesiredAnnualIncome()

	currentRate := te.EstimateRate(currentIncome)
	retirementRate := te.EstimateRate(retirementIncome)

	annualContribution := profile.EffectiveAnnualContribution()
	contributionTaxSavings := annualContribution.Mul(currentRate)

	taxableRetirementIncome := retirementIncome.Sub(
		profile.EstimatedSocialSecurity.Mul(decimal.NewFromFloat(0.85)))
	retirementTaxBurden := taxableRetirementIncome.Mul(retirementRate)

	te.Logger.Debugf("tax analysis: current rate %s, retirement rate %s",
		currentRate.String(), retirementRate.String())

	return domain.TaxAnalysis{
		CurrentTaxRate:               currentRate,
		RetirementTaxRate:            retirementRate,
		AnnualContributionTaxSavings: contributionTaxSavings,
		AnnualRetirementTaxBurden:    retirementTaxBurden,
		TaxRateDifference:            retirementRate.Sub(currentRate),
		Recommendations:              te.recommendations(currentRate, retirementRate),
	}
}

// recommendations picks the traditional-vs-Roth guidance for the rate
// relationship, then appends the always-applicable items.
func (te *TaxEstimator) recommendations(currentRate, retirementRate decimal.Decimal) []string {
	var recs []string
	switch {
	case currentRate.GreaterThan(retirementRate):
		recs = append(recs,
			"Consider maximizing traditional 401(k) contributions to reduce current taxes",
			"Traditional IRA contributions may provide tax deductions",
			"Consider tax-deferred investment strategies",
		)
	case retirementRate.GreaterThan(currentRate):
		recs = append(recs,
			"Consider Roth 401(k) contributions to pay taxes now at lower rate",
			"Roth IRA conversions may be beneficial",
			"Mix of traditional and Roth accounts provides tax flexibility",
		)
	default:
		recs = append(recs,
			"Consider a balanced approach with both traditional and Roth accounts",
			"Tax diversification provides flexibility in retirement",
		)
	}
	recs = append(recs,
		"Maximize employer matching contributions",
		"Consider HSA contributions for triple tax advantage",
		"Review tax-loss harvesting opportunities in taxable accounts",
	)
	return recs
}
