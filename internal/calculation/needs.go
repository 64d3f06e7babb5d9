package calculation

import (
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Shared decimal constants for the calculation package.
var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// NeedsCalculator derives the annual income requirement in retirement and the
// corpus needed to fund it.
type NeedsCalculator struct {
	Logger Logger
}

// NewNeedsCalculator creates a needs calculator. A nil logger means no-op.
func NewNeedsCalculator(logger Logger) *NeedsCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &NeedsCalculator{Logger: logger}
}

// Calculate computes the retirement corpus requirement for a profile.
//
// The desired income is reduced by Social Security and pension income,
// floored at zero, then healthcare costs are added back on top. The result is
// inflated to retirement-date dollars and discounted as an annuity over the
// withdrawal phase at the real (post-retirement minus inflation) return.
// When the real return is zero or negative the corpus is simply the annual
// need times the number of retirement years.
func (nc *NeedsCalculator) Calculate(profile *domain.Profile) domain.RetirementNeeds {
	yearsToRetirement := profile.YearsToRetirement()
	retirementYears := profile.RetirementYears()

	desiredIncome := profile.DesiredAnnualIncome()

	netIncomeNeeded := desiredIncome.Sub(profile.EstimatedSocialSecurity).Sub(profile.EstimatedPension)
	netIncomeNeeded = decimal.Max(netIncomeNeeded, decimal.Zero)

	totalAnnualNeed := netIncomeNeeded.Add(profile.EstimatedHealthcareCosts)

	inflationFactor := one.Add(profile.InflationRate).Pow(decimal.NewFromInt(int64(yearsToRetirement)))
	futureAnnualNeed := totalAnnualNeed.Mul(inflationFactor)

	realReturn := profile.PostRetirementReturnRate.Sub(profile.InflationRate)

	var corpus decimal.Decimal
	if realReturn.LessThanOrEqual(decimal.Zero) {
		corpus = futureAnnualNeed.Mul(decimal.NewFromInt(int64(retirementYears)))
	} else {
		// Present value of an annuity paying futureAnnualNeed each year.
		growth := one.Add(realReturn).Pow(decimal.NewFromInt(int64(retirementYears)))
		pvFactor := one.Sub(one.Div(growth)).Div(realReturn)
		corpus = futureAnnualNeed.Mul(pvFactor)
	}

	nc.Logger.Debugf("retirement needs: future annual need $%s, corpus $%s over %d years",
		futureAnnualNeed.StringFixed(0), corpus.StringFixed(0), retirementYears)

	return domain.RetirementNeeds{
		DesiredAnnualIncomeToday: desiredIncome,
		NetIncomeNeeded:          netIncomeNeeded,
		TotalAnnualNeedToday:     totalAnnualNeed,
		FutureAnnualNeed:         futureAnnualNeed,
		RetirementCorpusNeeded:   corpus,
		YearsToRetirement:        yearsToRetirement,
		RetirementYears:          retirementYears,
		InflationFactor:          inflationFactor,
	}
}
