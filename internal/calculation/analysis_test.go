package calculation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInflationImpact(t *testing.T) {
	pa := NewPlanAnalyzer(nil)

	t.Run("ten years at three percent", func(t *testing.T) {
		impact := pa.InflationImpact(decimal.NewFromInt(10000), 10, decimal.NewFromFloat(0.03))

		if !impact.OriginalAmount.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("original: got %s", impact.OriginalAmount)
		}
		if !near(impact.FutureNominalValue, 13439.16, 0.05) {
			t.Errorf("nominal: want ~13439.16, got %s", impact.FutureNominalValue)
		}
		if !near(impact.FuturePurchasingPower, 7440.94, 0.05) {
			t.Errorf("purchasing power: want ~7440.94, got %s", impact.FuturePurchasingPower)
		}
		if !near(impact.InflationErosion, 2559.06, 0.05) {
			t.Errorf("erosion: want ~2559.06, got %s", impact.InflationErosion)
		}
		if !near(impact.ErosionPercentage, 25.59, 0.01) {
			t.Errorf("erosion pct: want ~25.59, got %s", impact.ErosionPercentage)
		}
	})

	t.Run("zero years changes nothing", func(t *testing.T) {
		impact := pa.InflationImpact(decimal.NewFromInt(5000), 0, decimal.NewFromFloat(0.03))
		if !impact.FutureNominalValue.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("nominal: want 5000, got %s", impact.FutureNominalValue)
		}
		if !impact.InflationErosion.IsZero() {
			t.Errorf("erosion: want 0, got %s", impact.InflationErosion)
		}
	})

	t.Run("zero amount has zero erosion percentage", func(t *testing.T) {
		impact := pa.InflationImpact(decimal.Zero, 10, decimal.NewFromFloat(0.03))
		if !impact.ErosionPercentage.IsZero() {
			t.Errorf("erosion pct: want 0, got %s", impact.ErosionPercentage)
		}
	})
}

func TestCompoundGrowth(t *testing.T) {
	pa := NewPlanAnalyzer(nil)

	t.Run("principal with contributions", func(t *testing.T) {
		growth := pa.CompoundGrowth(decimal.NewFromInt(10000), decimal.NewFromFloat(0.07), 10, decimal.NewFromInt(6000))

		if !growth.TotalContributions.Equal(decimal.NewFromInt(60000)) {
			t.Errorf("contributions: want 60000, got %s", growth.TotalContributions)
		}
		if !near(growth.FinalValue, 102570.2, 1) {
			t.Errorf("final value: want ~102570, got %s", growth.FinalValue)
		}
		if !near(growth.InvestmentGrowth, 32570.2, 1) {
			t.Errorf("investment growth: want ~32570, got %s", growth.InvestmentGrowth)
		}
		if !near(growth.TotalReturnPercentage, 46.53, 0.01) {
			t.Errorf("total return: want ~46.53%%, got %s", growth.TotalReturnPercentage)
		}
	})

	t.Run("zero rate shows zero growth", func(t *testing.T) {
		growth := pa.CompoundGrowth(decimal.NewFromInt(1000), decimal.Zero, 5, decimal.NewFromInt(1000))

		if !growth.FinalValue.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("final value: want 6000, got %s", growth.FinalValue)
		}
		if !growth.InvestmentGrowth.IsZero() {
			t.Errorf("investment growth: want 0, got %s", growth.InvestmentGrowth)
		}
		if !growth.TotalReturnPercentage.IsZero() {
			t.Errorf("total return: want 0, got %s", growth.TotalReturnPercentage)
		}
	})

	t.Run("principal only", func(t *testing.T) {
		growth := pa.CompoundGrowth(decimal.NewFromInt(10000), decimal.NewFromFloat(0.07), 10, decimal.Zero)

		if !near(growth.FinalValue, 19671.51, 0.5) {
			t.Errorf("final value: want ~19671.51, got %s", growth.FinalValue)
		}
		if !near(growth.TotalReturnPercentage, 96.72, 0.01) {
			t.Errorf("total return: want ~96.72%%, got %s", growth.TotalReturnPercentage)
		}
	})
}

func TestRequiredSavingsRate(t *testing.T) {
	pa := NewPlanAnalyzer(nil)

	t.Run("thirty year horizon", func(t *testing.T) {
		rate := pa.RequiredSavingsRate(
			decimal.NewFromInt(75000), decimal.NewFromInt(60000), 30,
			decimal.NewFromInt(50000), decimal.NewFromFloat(0.07))

		if !rate.RequiredCorpus.Equal(decimal.NewFromInt(1500000)) {
			t.Errorf("corpus: want 1500000, got %s", rate.RequiredCorpus)
		}
		if !near(rate.CurrentSavingsFutureValue, 380612.75, 50) {
			t.Errorf("savings FV: want ~380613, got %s", rate.CurrentSavingsFutureValue)
		}
		if !near(rate.AdditionalCorpusNeeded, 1119387.25, 50) {
			t.Errorf("additional corpus: want ~1119387, got %s", rate.AdditionalCorpusNeeded)
		}
		if !near(rate.RequiredAnnualSavings, 11850.3, 2) {
			t.Errorf("annual savings: want ~11850, got %s", rate.RequiredAnnualSavings)
		}
		if !near(rate.RequiredSavingsRatePercentage, 15.8, 0.01) {
			t.Errorf("rate: want ~15.8%%, got %s", rate.RequiredSavingsRatePercentage)
		}
		if !rate.IsFeasible {
			t.Error("want feasible")
		}
	})

	t.Run("no time remaining demands the corpus now", func(t *testing.T) {
		rate := pa.RequiredSavingsRate(
			decimal.NewFromInt(50000), decimal.NewFromInt(40000), 0,
			decimal.NewFromInt(10000), decimal.NewFromFloat(0.07))

		if !rate.RequiredAnnualSavings.Equal(decimal.NewFromInt(990000)) {
			t.Errorf("annual savings: want 990000, got %s", rate.RequiredAnnualSavings)
		}
		if rate.IsFeasible {
			t.Error("want infeasible")
		}
	})

	t.Run("zero return divides linearly", func(t *testing.T) {
		rate := pa.RequiredSavingsRate(
			decimal.NewFromInt(50000), decimal.NewFromInt(20000), 10,
			decimal.Zero, decimal.Zero)

		if !rate.RequiredAnnualSavings.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("annual savings: want 50000, got %s", rate.RequiredAnnualSavings)
		}
		if rate.IsFeasible {
			t.Error("100% savings rate should be infeasible")
		}
	})

	t.Run("corpus already covered", func(t *testing.T) {
		rate := pa.RequiredSavingsRate(
			decimal.NewFromInt(75000), decimal.NewFromInt(60000), 10,
			decimal.NewFromInt(2000000), decimal.NewFromFloat(0.07))

		if !rate.AdditionalCorpusNeeded.IsZero() {
			t.Errorf("additional corpus: want 0, got %s", rate.AdditionalCorpusNeeded)
		}
		if !rate.RequiredAnnualSavings.IsZero() {
			t.Errorf("annual savings: want 0, got %s", rate.RequiredAnnualSavings)
		}
		if !rate.IsFeasible {
			t.Error("want feasible")
		}
	})
}

func TestCatchUpStrategies(t *testing.T) {
	pa := NewPlanAnalyzer(nil)

	t.Run("full strategy set", func(t *testing.T) {
		strategies := pa.CatchUpStrategies(decimal.NewFromInt(166974), 30, decimal.NewFromInt(800))

		if len(strategies) != 7 {
			t.Fatalf("want 7 strategies, got %d", len(strategies))
		}

		wantNames := []string{
			"Increase Monthly Savings",
			"Work 1 More Year",
			"Work 2 More Years",
			"Work 3 More Years",
			"Reduce Retirement Expenses by 10%",
			"Reduce Retirement Expenses by 15%",
			"Reduce Retirement Expenses by 20%",
		}
		for i, s := range strategies {
			if s.Strategy != wantNames[i] {
				t.Errorf("strategy %d: want %q, got %q", i, wantNames[i], s.Strategy)
			}
			if !s.AdditionalMonthly.IsPositive() {
				t.Errorf("strategy %d: non-positive monthly %s", i, s.AdditionalMonthly)
			}
			if !strings.Contains(s.Description, "$") {
				t.Errorf("strategy %d: description missing amount: %q", i, s.Description)
			}
		}

		base := strategies[0]
		if !near(base.AdditionalMonthly, 168.11, 1) {
			t.Errorf("baseline monthly: want ~168, got %s", base.AdditionalMonthly)
		}
		// Well under half the current $800 contribution.
		if base.Feasibility != "high" {
			t.Errorf("baseline feasibility: want high, got %s", base.Feasibility)
		}
		wantTotal := base.AdditionalMonthly.Mul(decimal.NewFromInt(360))
		if !base.TotalAdditional.Equal(wantTotal) {
			t.Errorf("total additional: want %s, got %s", wantTotal, base.TotalAdditional)
		}

		// Each extra working year lowers the required monthly amount.
		for i := 1; i <= 3; i++ {
			if strategies[i].ExtraYears != i {
				t.Errorf("strategy %d: want %d extra years, got %d", i, i, strategies[i].ExtraYears)
			}
			if !strategies[i].AdditionalMonthly.LessThan(strategies[i-1].AdditionalMonthly) {
				t.Errorf("strategy %d: monthly %s not below %s",
					i, strategies[i].AdditionalMonthly, strategies[i-1].AdditionalMonthly)
			}
		}

		if !strategies[4].ExpenseReduction.Equal(decimal.NewFromFloat(0.10)) {
			t.Errorf("expense reduction: want 0.10, got %s", strategies[4].ExpenseReduction)
		}
		if strategies[4].Feasibility != "medium" || strategies[5].Feasibility != "medium" {
			t.Error("10% and 15% reductions should be medium feasibility")
		}
		if strategies[6].Feasibility != "low" {
			t.Errorf("20%% reduction: want low feasibility, got %s", strategies[6].Feasibility)
		}
	})

	t.Run("no shortfall", func(t *testing.T) {
		if got := pa.CatchUpStrategies(decimal.Zero, 30, decimal.NewFromInt(800)); got != nil {
			t.Errorf("want nil, got %d strategies", len(got))
		}
	})

	t.Run("no time remaining", func(t *testing.T) {
		if got := pa.CatchUpStrategies(decimal.NewFromInt(100000), 0, decimal.NewFromInt(800)); got != nil {
			t.Errorf("want nil, got %d strategies", len(got))
		}
	})
}

func TestRiskFactors(t *testing.T) {
	pa := NewPlanAnalyzer(nil)

	t.Run("reference profile", func(t *testing.T) {
		ratings := pa.RiskFactors(testProfile(), decimal.NewFromFloat(15.8))

		if ratings.MarketConditions != 5 {
			t.Errorf("market: want 5, got %d", ratings.MarketConditions)
		}
		if ratings.TimeHorizon != 2 {
			t.Errorf("time horizon: want 2, got %d", ratings.TimeHorizon)
		}
		if ratings.SavingsRate != 1 {
			t.Errorf("savings rate: want 1, got %d", ratings.SavingsRate)
		}
		if ratings.ReturnAssumptions != 3 {
			t.Errorf("return assumptions: want 3, got %d", ratings.ReturnAssumptions)
		}
		if ratings.Inflation != 2 {
			t.Errorf("inflation: want 2, got %d", ratings.Inflation)
		}
		if ratings.Longevity != 2 {
			t.Errorf("longevity: want 2, got %d", ratings.Longevity)
		}
	})

	t.Run("late start with long retirement", func(t *testing.T) {
		p := testProfile()
		p.CurrentAge = 58
		p.RetirementAge = 62
		p.LifeExpectancy = 95
		p.PreRetirementReturnRate = decimal.NewFromFloat(0.12)
		p.InflationRate = decimal.NewFromFloat(0.05)

		ratings := pa.RiskFactors(p, decimal.NewFromInt(2))

		if ratings.TimeHorizon != 9 {
			t.Errorf("time horizon: want 9, got %d", ratings.TimeHorizon)
		}
		if ratings.SavingsRate != 9 {
			t.Errorf("savings rate: want 9, got %d", ratings.SavingsRate)
		}
		if ratings.ReturnAssumptions != 8 {
			t.Errorf("return assumptions: want 8, got %d", ratings.ReturnAssumptions)
		}
		if ratings.Inflation != 7 {
			t.Errorf("inflation: want 7, got %d", ratings.Inflation)
		}
		if ratings.Longevity != 7 {
			t.Errorf("longevity: want 7, got %d", ratings.Longevity)
		}
	})

	t.Run("intermediate bands", func(t *testing.T) {
		p := testProfile()
		p.CurrentAge = 50 // 15 years out
		p.LifeExpectancy = 92
		p.PreRetirementReturnRate = decimal.NewFromFloat(0.09)
		p.InflationRate = decimal.NewFromFloat(0.035)

		ratings := pa.RiskFactors(p, decimal.NewFromInt(12))

		if ratings.TimeHorizon != 4 {
			t.Errorf("time horizon: want 4, got %d", ratings.TimeHorizon)
		}
		if ratings.SavingsRate != 3 {
			t.Errorf("savings rate: want 3, got %d", ratings.SavingsRate)
		}
		if ratings.ReturnAssumptions != 5 {
			t.Errorf("return assumptions: want 5, got %d", ratings.ReturnAssumptions)
		}
		if ratings.Inflation != 4 {
			t.Errorf("inflation: want 4, got %d", ratings.Inflation)
		}
		if ratings.Longevity != 5 {
			t.Errorf("longevity: want 5, got %d", ratings.Longevity)
		}
	})
}
