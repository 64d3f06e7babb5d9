package calculation

import (
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Sensitivity variable names, matching the profile field each sweep perturbs.
const (
	SensitivityPreReturn     = "pre_retirement_return_rate"
	SensitivityInflation     = "inflation_rate"
	SensitivityRetirementAge = "retirement_age"
	SensitivityContribution  = "monthly_contribution"
)

// minSensitivityRetirementAge floors the retirement-age sweep so a large
// negative delta cannot produce an implausible early retirement.
const minSensitivityRetirementAge = 50

// SensitivityAnalyzer measures how the projected savings respond to small
// changes in the key plan assumptions.
type SensitivityAnalyzer struct {
	Projection *ProjectionEngine
	Logger     Logger
}

// NewSensitivityAnalyzer creates a sensitivity analyzer. A nil logger means no-op.
func NewSensitivityAnalyzer(logger Logger) *SensitivityAnalyzer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &SensitivityAnalyzer{
		Projection: NewProjectionEngine(logger),
		Logger:     logger,
	}
}

// sensitivitySweep perturbs one profile field across a set of deltas.
type sensitivitySweep struct {
	variable string
	deltas   []decimal.Decimal
	apply    func(domain.Profile, decimal.Decimal) domain.Profile
}

func (sa *SensitivityAnalyzer) sweeps() []sensitivitySweep {
	return []sensitivitySweep{
		{
			variable: SensitivityPreReturn,
			deltas:   decimalsFromFloats(-0.02, -0.01, 0, 0.01, 0.02),
			apply: func(p domain.Profile, delta decimal.Decimal) domain.Profile {
				p.PreRetirementReturnRate = p.PreRetirementReturnRate.Add(delta)
				return p
			},
		},
		{
			variable: SensitivityInflation,
			deltas:   decimalsFromFloats(-0.01, -0.005, 0, 0.005, 0.01),
			apply: func(p domain.Profile, delta decimal.Decimal) domain.Profile {
				p.InflationRate = p.InflationRate.Add(delta)
				return p
			},
		},
		{
			variable: SensitivityRetirementAge,
			deltas:   decimalsFromFloats(-5, -2, 0, 2, 5),
			apply: func(p domain.Profile, delta decimal.Decimal) domain.Profile {
				age := p.RetirementAge + int(delta.IntPart())
				if age < minSensitivityRetirementAge {
					age = minSensitivityRetirementAge
				}
				p.RetirementAge = age
				return p
			},
		},
		{
			variable: SensitivityContribution,
			deltas:   decimalsFromFloats(-200, -100, 0, 100, 200),
			apply: func(p domain.Profile, delta decimal.Decimal) domain.Profile {
				p.MonthlyContribution = decimal.Max(p.MonthlyContribution.Add(delta), decimal.Zero)
				return p
			},
		},
	}
}

// Analyze recomputes the projected savings for each perturbed variant of the
// profile. Each point carries the projected total, its distance from the
// baseline, and the relative change. The profile itself is never modified;
// each variant starts from a fresh copy.
func (sa *SensitivityAnalyzer) Analyze(profile *domain.Profile) domain.SensitivityResult {
	baseline := sa.Projection.CalculateSavingsProjection(profile).TotalProjectedSavings

	results := make(domain.SensitivityResult, 4)
	for _, sweep := range sa.sweeps() {
		points := make([]domain.SensitivityPoint, 0, len(sweep.deltas))
		for _, delta := range sweep.deltas {
			variant := sweep.apply(*profile, delta)
			projected := sa.Projection.CalculateSavingsProjection(&variant).TotalProjectedSavings

			point := domain.SensitivityPoint{
				Change:         delta,
				TotalProjected: projected,
				GapChange:      projected.Sub(baseline),
			}
			if baseline.GreaterThan(decimal.Zero) {
				point.PercentageChange = projected.Div(baseline).Sub(one).Mul(hundred)
			}
			points = append(points, point)
		}
		results[sweep.variable] = points
	}

	sa.Logger.Debugf("sensitivity analysis: %d variables swept", len(results))
	return results
}

func decimalsFromFloats(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}
