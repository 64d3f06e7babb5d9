package calculation

import (
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// 2024 bend points and replacement rates for the primary insurance amount
// formula, and the post-1960 full retirement age.
var (
	ssBendPoint1 = decimal.NewFromInt(1174)
	ssBendPoint2 = decimal.NewFromInt(7078)
	ssRate1      = decimal.NewFromFloat(0.90)
	ssRate2      = decimal.NewFromFloat(0.32)
	ssRate3      = decimal.NewFromFloat(0.15)
)

const ssFullRetirementAge = 67

// ssEstimateNote is attached to every estimate.
const ssEstimateNote = "This is a simplified estimate. Actual benefits may vary."

// SocialSecurityEstimator approximates a Social Security benefit from an
// earnings history using the bend-point formula.
type SocialSecurityEstimator struct {
	Logger Logger
}

// NewSocialSecurityEstimator creates an estimator. A nil logger means no-op.
func NewSocialSecurityEstimator(logger Logger) *SocialSecurityEstimator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &SocialSecurityEstimator{Logger: logger}
}

// Estimate computes the benefit from up to the last ten years of annual
// earnings. This is a rough stand-in for the official 35-year AIME.
// Claiming before the full retirement age of 67 reduces the benefit by 0.55%
// per month early, capped at 25%. Claiming after adds 8% per delayed year.
// An empty earnings history yields a zero estimate.
func (se *SocialSecurityEstimator) Estimate(annualEarnings []decimal.Decimal, retirementAge int) domain.SocialSecurityEstimate {
	if len(annualEarnings) == 0 {
		return domain.SocialSecurityEstimate{
			FullRetirementAge: ssFullRetirementAge,
			Note:              ssEstimateNote,
		}
	}

	recent := annualEarnings
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	var sum decimal.Decimal
	for _, earnings := range recent {
		sum = sum.Add(earnings)
	}
	averageAnnual := sum.Div(decimal.NewFromInt(int64(len(recent))))
	aime := averageAnnual.Div(twelve)

	var pia decimal.Decimal
	switch {
	case aime.LessThanOrEqual(ssBendPoint1):
		pia = aime.Mul(ssRate1)
	case aime.LessThanOrEqual(ssBendPoint2):
		pia = ssBendPoint1.Mul(ssRate1).
			Add(aime.Sub(ssBendPoint1).Mul(ssRate2))
	default:
		pia = ssBendPoint1.Mul(ssRate1).
			Add(ssBendPoint2.Sub(ssBendPoint1).Mul(ssRate2)).
			Add(aime.Sub(ssBendPoint2).Mul(ssRate3))
	}

	if retirementAge < ssFullRetirementAge {
		monthsEarly := decimal.NewFromInt(int64((ssFullRetirementAge - retirementAge) * 12))
		reduction := decimal.Min(decimal.NewFromFloat(0.25), monthsEarly.Mul(decimal.NewFromFloat(0.0055)))
		pia = pia.Mul(one.Sub(reduction))
	} else if retirementAge > ssFullRetirementAge {
		yearsDelayed := decimal.NewFromInt(int64(retirementAge - ssFullRetirementAge))
		pia = pia.Mul(one.Add(yearsDelayed.Mul(decimal.NewFromFloat(0.08))))
	}

	se.Logger.Debugf("social security estimate: $%s/month at age %d", pia.StringFixed(0), retirementAge)

	return domain.SocialSecurityEstimate{
		MonthlyBenefit:    pia,
		AnnualBenefit:     pia.Mul(twelve),
		FullRetirementAge: ssFullRetirementAge,
		AIME:              aime,
		Note:              ssEstimateNote,
	}
}
