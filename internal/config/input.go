package config

import (
	"fmt"
	"io"
	"os"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Loader defaults applied when a profile field is absent. A zero value in
// the file is treated as absent.
var (
	defaultLifeExpectancy = 85
	defaultIncomeRatio    = decimal.NewFromFloat(0.8)
	defaultMatchLimit     = decimal.NewFromFloat(0.06)
	defaultPreReturn      = decimal.NewFromFloat(0.07)
	defaultPostReturn     = decimal.NewFromFloat(0.05)
	defaultInflation      = decimal.NewFromFloat(0.03)
)

// InputParser handles parsing of profile input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML or JSON file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseYAML(data)
}

// LoadFromReader loads a profile from a stream.
func (ip *InputParser) LoadFromReader(r io.Reader) (*domain.Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ip.ParseYAML(data)
}

// ParseYAML parses a profile document, applies defaults for absent fields,
// and validates the result. JSON input parses too; YAML is a superset.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Profile, error) {
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&profile)

	if err := ip.checkRanges(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// applyDefaults fills absent fields with the standard planning assumptions.
func applyDefaults(p *domain.Profile) {
	if p.LifeExpectancy == 0 {
		p.LifeExpectancy = defaultLifeExpectancy
	}
	if p.DesiredRetirementIncomeRatio.IsZero() {
		p.DesiredRetirementIncomeRatio = defaultIncomeRatio
	}
	if p.EmployerMatchLimit.IsZero() {
		p.EmployerMatchLimit = defaultMatchLimit
	}
	if p.PreRetirementReturnRate.IsZero() {
		p.PreRetirementReturnRate = defaultPreReturn
	}
	if p.PostRetirementReturnRate.IsZero() {
		p.PostRetirementReturnRate = defaultPostReturn
	}
	if p.InflationRate.IsZero() {
		p.InflationRate = defaultInflation
	}
}

// checkRanges applies file-input sanity limits on top of the structural
// validation in domain.Profile.
func (ip *InputParser) checkRanges(p *domain.Profile) error {
	if p.LifeExpectancy > 120 {
		return fmt.Errorf("life expectancy must be at most 120, got %d", p.LifeExpectancy)
	}
	if p.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}
	return nil
}

// CreateExampleProfile returns a complete sample profile: a 35-year-old
// earning $75,000, retiring at 65 with $50,000 saved and an $800 monthly
// contribution under a 50% employer match up to 6% of salary.
func (ip *InputParser) CreateExampleProfile() *domain.Profile {
	return &domain.Profile{
		CurrentAge:                   35,
		RetirementAge:                65,
		LifeExpectancy:               85,
		CurrentAnnualIncome:          decimal.NewFromInt(75000),
		CurrentSavings:               decimal.NewFromInt(50000),
		MonthlyContribution:          decimal.NewFromInt(800),
		DesiredRetirementIncomeRatio: decimal.NewFromFloat(0.8),
		EmployerMatchRate:            decimal.NewFromFloat(0.5),
		EmployerMatchLimit:           decimal.NewFromFloat(0.06),
		PreRetirementReturnRate:      decimal.NewFromFloat(0.07),
		PostRetirementReturnRate:     decimal.NewFromFloat(0.05),
		InflationRate:                decimal.NewFromFloat(0.03),
		EstimatedSocialSecurity:      decimal.NewFromInt(18000),
	}
}
