package calculation

import (
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine projects savings growth to retirement and walks the
// balance year by year through the withdrawal phase.
type ProjectionEngine struct {
	Needs *NeedsCalculator
	// BaseYear is the calendar year of the projection's first row.
	// Zero means the current year.
	BaseYear int
	Logger   Logger
}

// NewProjectionEngine creates a projection engine. A nil logger means no-op.
func NewProjectionEngine(logger Logger) *ProjectionEngine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &ProjectionEngine{
		Needs:  NewNeedsCalculator(logger),
		Logger: logger,
	}
}

func (pe *ProjectionEngine) baseYear() int {
	if pe.BaseYear != 0 {
		return pe.BaseYear
	}
	return nowFunc().Year()
}

// CalculateSavingsProjection computes the projected savings at retirement in
// closed form. Current savings compound annually and the effective annual
// contribution (including employer match) accumulates as an ordinary annuity.
func (pe *ProjectionEngine) CalculateSavingsProjection(profile *domain.Profile) domain.SavingsProjection {
	years := profile.YearsToRetirement()

	growthFactor := one.Add(profile.PreRetirementReturnRate).Pow(decimal.NewFromInt(int64(years)))
	currentSavingsFV := profile.CurrentSavings.Mul(growthFactor)

	effectiveMonthly := profile.EffectiveMonthlyContribution()
	annualContribution := effectiveMonthly.Mul(twelve)

	var contributionsFV decimal.Decimal
	if profile.PreRetirementReturnRate.IsZero() {
		contributionsFV = annualContribution.Mul(decimal.NewFromInt(int64(years)))
	} else {
		annuityFactor := growthFactor.Sub(one).Div(profile.PreRetirementReturnRate)
		contributionsFV = annualContribution.Mul(annuityFactor)
	}

	totalProjected := currentSavingsFV.Add(contributionsFV)

	needs := pe.Needs.Calculate(profile)
	gap := needs.RetirementCorpusNeeded.Sub(totalProjected)

	pe.Logger.Debugf("savings projection: $%s projected against $%s corpus",
		totalProjected.StringFixed(0), needs.RetirementCorpusNeeded.StringFixed(0))

	return domain.SavingsProjection{
		CurrentSavingsFutureValue:    currentSavingsFV,
		ContributionsFutureValue:     contributionsFV,
		TotalProjectedSavings:        totalProjected,
		CorpusNeeded:                 needs.RetirementCorpusNeeded,
		Shortfall:                    decimal.Max(gap, decimal.Zero),
		Surplus:                      decimal.Max(gap.Neg(), decimal.Zero),
		AdditionalMonthlyNeeded:      sinkingFundPayment(gap, years, profile.PreRetirementReturnRate),
		EffectiveMonthlyContribution: effectiveMonthly,
		SavingsRatePercentage:        profile.SavingsRatePercentage(),
	}
}

// sinkingFundPayment solves the level monthly payment that accumulates to gap
// over the horizon at the annual rate, compounding monthly. Zero when there is
// no gap or no time remaining.
func sinkingFundPayment(gap decimal.Decimal, years int, annualRate decimal.Decimal) decimal.Decimal {
	if gap.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(years * 12))
	if annualRate.IsZero() {
		return gap.Div(months)
	}
	monthlyRate := annualRate.Div(twelve)
	denom := one.Add(monthlyRate).Pow(months).Sub(one)
	return gap.Mul(monthlyRate).Div(denom)
}

// projectionState carries the running balance across projection years.
type projectionState struct {
	age          int
	balance      decimal.Decimal
	contribution decimal.Decimal // annual, grows with inflation each year
}

// GenerateYearlyProjection walks the balance from the current age through
// life expectancy. Each record carries the start-of-year balance. The walk
// stops early once the balance is exhausted.
func (pe *ProjectionEngine) GenerateYearlyProjection(profile *domain.Profile) []domain.YearRecord {
	needs := pe.Needs.Calculate(profile)
	baseYear := pe.baseYear()

	state := projectionState{
		age:          profile.CurrentAge,
		balance:      profile.CurrentSavings,
		contribution: profile.EffectiveMonthlyContribution().Mul(twelve),
	}

	var records []domain.YearRecord
	for state.age <= profile.LifeExpectancy {
		var rec domain.YearRecord
		if state.age < profile.RetirementAge {
			rec, state = pe.stepAccumulation(profile, state)
		} else {
			rec, state = pe.stepWithdrawal(profile, needs, state)
		}
		rec.Year = baseYear + (rec.Age - profile.CurrentAge)
		records = append(records, rec)
		if state.balance.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	pe.Logger.Debugf("yearly projection: %d rows from age %d", len(records), profile.CurrentAge)
	return records
}

// stepAccumulation applies one working year: investment growth plus the
// current annual contribution, which is then inflation-adjusted for next year.
func (pe *ProjectionEngine) stepAccumulation(profile *domain.Profile, st projectionState) (domain.YearRecord, projectionState) {
	investmentReturn := st.balance.Mul(profile.PreRetirementReturnRate)
	rec := domain.YearRecord{
		Age:              st.age,
		Balance:          st.balance,
		Phase:            domain.PhaseAccumulation,
		Contribution:     st.contribution,
		InvestmentReturn: investmentReturn,
		Withdrawal:       decimal.Zero,
		NetChange:        investmentReturn.Add(st.contribution),
	}
	st.balance = st.balance.Add(investmentReturn).Add(st.contribution)
	st.contribution = st.contribution.Mul(one.Add(profile.InflationRate))
	st.age++
	return rec, st
}

// stepWithdrawal applies one retirement year: investment growth minus an
// inflation-adjusted withdrawal. The balance is floored at zero.
func (pe *ProjectionEngine) stepWithdrawal(profile *domain.Profile, needs domain.RetirementNeeds, st projectionState) (domain.YearRecord, projectionState) {
	yearsIntoRetirement := st.age - profile.RetirementAge
	withdrawal := needs.FutureAnnualNeed.Mul(
		one.Add(profile.InflationRate).Pow(decimal.NewFromInt(int64(yearsIntoRetirement))))
	investmentReturn := st.balance.Mul(profile.PostRetirementReturnRate)
	rec := domain.YearRecord{
		Age:              st.age,
		Balance:          st.balance,
		Phase:            domain.PhaseWithdrawal,
		Contribution:     decimal.Zero,
		InvestmentReturn: investmentReturn,
		Withdrawal:       withdrawal,
		NetChange:        investmentReturn.Sub(withdrawal),
	}
	st.balance = decimal.Max(decimal.Zero, st.balance.Add(investmentReturn).Sub(withdrawal))
	st.age++
	return rec, st
}
