package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Profile holds the planning assumptions for a single person. All monetary
// amounts are annual unless the field name says otherwise; rates are decimal
// fractions (0.07 = 7%).
type Profile struct {
	CurrentAge     int `yaml:"current_age" json:"current_age"`
	RetirementAge  int `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	CurrentAnnualIncome decimal.Decimal `yaml:"current_annual_income" json:"current_annual_income"`
	CurrentSavings      decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`

	DesiredRetirementIncomeRatio decimal.Decimal `yaml:"desired_retirement_income_ratio" json:"desired_retirement_income_ratio"`
	EmployerMatchRate            decimal.Decimal `yaml:"employer_match_rate" json:"employer_match_rate"`     // fraction of matched contributions, e.g. 0.5
	EmployerMatchLimit           decimal.Decimal `yaml:"employer_match_limit" json:"employer_match_limit"`   // matched contributions capped at this fraction of salary
	PreRetirementReturnRate      decimal.Decimal `yaml:"pre_retirement_return_rate" json:"pre_retirement_return_rate"`
	PostRetirementReturnRate     decimal.Decimal `yaml:"post_retirement_return_rate" json:"post_retirement_return_rate"`
	InflationRate                decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`

	EstimatedSocialSecurity  decimal.Decimal `yaml:"estimated_social_security,omitempty" json:"estimated_social_security,omitempty"`   // annual benefit
	EstimatedHealthcareCosts decimal.Decimal `yaml:"estimated_healthcare_costs,omitempty" json:"estimated_healthcare_costs,omitempty"` // annual, on top of income need
	EstimatedPension         decimal.Decimal `yaml:"estimated_pension,omitempty" json:"estimated_pension,omitempty"`                   // annual benefit
}

// Validate checks the structural invariants every calculation relies on.
// Range sanity checks for file-loaded profiles live in the config parser.
func (p *Profile) Validate() error {
	if p.CurrentAge < 18 || p.CurrentAge > 100 {
		return fmt.Errorf("current age must be between 18 and 100, got %d", p.CurrentAge)
	}
	if p.RetirementAge <= p.CurrentAge {
		return fmt.Errorf("retirement age (%d) must be greater than current age (%d)", p.RetirementAge, p.CurrentAge)
	}
	if p.LifeExpectancy <= p.RetirementAge {
		return fmt.Errorf("life expectancy (%d) must be greater than retirement age (%d)", p.LifeExpectancy, p.RetirementAge)
	}
	if p.CurrentAnnualIncome.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("current annual income must be positive, got %s", p.CurrentAnnualIncome)
	}
	if p.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative, got %s", p.CurrentSavings)
	}
	if p.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative, got %s", p.MonthlyContribution)
	}
	if p.DesiredRetirementIncomeRatio.LessThanOrEqual(decimal.Zero) || p.DesiredRetirementIncomeRatio.GreaterThan(decimal.NewFromInt(2)) {
		return fmt.Errorf("desired retirement income ratio must be in (0, 2], got %s", p.DesiredRetirementIncomeRatio)
	}
	if p.EmployerMatchRate.IsNegative() || p.EmployerMatchRate.GreaterThan(decimal.NewFromInt(2)) {
		return fmt.Errorf("employer match rate must be in [0, 2], got %s", p.EmployerMatchRate)
	}
	if p.EmployerMatchLimit.IsNegative() || p.EmployerMatchLimit.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("employer match limit must be in [0, 1], got %s", p.EmployerMatchLimit)
	}
	one := decimal.NewFromInt(1)
	negOne := decimal.NewFromInt(-1)
	if p.PreRetirementReturnRate.LessThan(negOne) || p.PreRetirementReturnRate.GreaterThan(one) {
		return fmt.Errorf("pre-retirement return rate must be in [-1, 1], got %s", p.PreRetirementReturnRate)
	}
	if p.PostRetirementReturnRate.LessThan(negOne) || p.PostRetirementReturnRate.GreaterThan(one) {
		return fmt.Errorf("post-retirement return rate must be in [-1, 1], got %s", p.PostRetirementReturnRate)
	}
	if p.InflationRate.LessThan(negOne) || p.InflationRate.GreaterThan(one) {
		return fmt.Errorf("inflation rate must be in [-1, 1], got %s", p.InflationRate)
	}
	if p.EstimatedSocialSecurity.IsNegative() {
		return fmt.Errorf("estimated social security cannot be negative, got %s", p.EstimatedSocialSecurity)
	}
	if p.EstimatedHealthcareCosts.IsNegative() {
		return fmt.Errorf("estimated healthcare costs cannot be negative, got %s", p.EstimatedHealthcareCosts)
	}
	if p.EstimatedPension.IsNegative() {
		return fmt.Errorf("estimated pension cannot be negative, got %s", p.EstimatedPension)
	}
	return nil
}

// YearsToRetirement returns the length of the accumulation phase in years.
func (p *Profile) YearsToRetirement() int {
	return p.RetirementAge - p.CurrentAge
}

// RetirementYears returns the length of the withdrawal phase in years.
func (p *Profile) RetirementYears() int {
	return p.LifeExpectancy - p.RetirementAge
}

// DesiredAnnualIncome returns the target retirement income in today's dollars.
func (p *Profile) DesiredAnnualIncome() decimal.Decimal {
	return p.CurrentAnnualIncome.Mul(p.DesiredRetirementIncomeRatio)
}

// AnnualContribution returns the employee's own annual contribution.
func (p *Profile) AnnualContribution() decimal.Decimal {
	return p.MonthlyContribution.Mul(decimal.NewFromInt(12))
}

// EmployerAnnualMatch returns the annual employer match. The matched
// contribution rate is capped at the employer match limit, so the match never
// exceeds income x limit x rate.
func (p *Profile) EmployerAnnualMatch() decimal.Decimal {
	if p.CurrentAnnualIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	contributionRate := p.AnnualContribution().Div(p.CurrentAnnualIncome)
	matchedRate := decimal.Min(contributionRate, p.EmployerMatchLimit)
	return p.CurrentAnnualIncome.Mul(matchedRate).Mul(p.EmployerMatchRate)
}

// EffectiveAnnualContribution returns the employee contribution plus the
// employer match.
func (p *Profile) EffectiveAnnualContribution() decimal.Decimal {
	return p.AnnualContribution().Add(p.EmployerAnnualMatch())
}

// EffectiveMonthlyContribution returns the effective annual contribution
// spread back over twelve months.
func (p *Profile) EffectiveMonthlyContribution() decimal.Decimal {
	return p.EffectiveAnnualContribution().Div(decimal.NewFromInt(12))
}

// SavingsRatePercentage returns the effective annual contribution as a
// percentage of income, 0 when income is not positive.
func (p *Profile) SavingsRatePercentage() decimal.Decimal {
	if p.CurrentAnnualIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return p.EffectiveAnnualContribution().Div(p.CurrentAnnualIncome).Mul(decimal.NewFromInt(100))
}
