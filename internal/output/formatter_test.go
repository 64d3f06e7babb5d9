package output

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/planwise/retirement-engine/internal/domain"
)

func buildTestResult() *domain.PlanResult {
	yr := func(age, year int, balance int64, phase string) domain.YearRecord {
		return domain.YearRecord{
			Age:     age,
			Year:    year,
			Balance: decimal.NewFromInt(balance),
			Phase:   phase,
		}
	}
	details := func(name string, rate int) domain.StrategyDetails {
		return domain.StrategyDetails{
			Name:        name,
			Description: "test strategy",
			Pros:        []string{"simple"},
			Cons:        []string{"rigid"},
			SuccessRate: rate,
		}
	}
	return &domain.PlanResult{
		Metadata: domain.PlanMetadata{
			CalculationID: "test-calculation-id",
			Outcome:       domain.OutcomeSuccess,
			DurationMs:    12,
		},
		RetirementNeeds: domain.RetirementNeeds{
			DesiredAnnualIncomeToday: decimal.NewFromInt(60000),
			NetIncomeNeeded:          decimal.NewFromInt(42000),
			FutureAnnualNeed:         decimal.NewFromInt(101934),
			RetirementCorpusNeeded:   decimal.NewFromInt(1666947),
			YearsToRetirement:        30,
			RetirementYears:          20,
		},
		SavingsProjections: domain.SavingsProjection{
			CurrentSavingsFutureValue:    decimal.NewFromInt(380613),
			ContributionsFutureValue:     decimal.NewFromInt(1119360),
			TotalProjectedSavings:        decimal.NewFromInt(1499973),
			CorpusNeeded:                 decimal.NewFromInt(1666947),
			Shortfall:                    decimal.NewFromInt(166974),
			AdditionalMonthlyNeeded:      decimal.NewFromInt(137),
			EffectiveMonthlyContribution: decimal.NewFromInt(987),
			SavingsRatePercentage:        decimal.NewFromFloat(15.79),
		},
		WithdrawalStrategies: []domain.WithdrawalStrategy{
			domain.FourPercentRule{
				StrategyDetails:     details("4% Rule", 95),
				InitialWithdrawal:   decimal.NewFromInt(59999),
				SustainabilityYears: 30,
			},
			domain.DynamicWithdrawal{
				StrategyDetails:       details("Dynamic Withdrawal", 98),
				InitialWithdrawalRate: decimal.NewFromFloat(0.04),
				AdjustmentMechanism:   "Adjust spending based on portfolio performance",
			},
			domain.BondLadder{
				StrategyDetails: details("Bond Ladder", 90),
				RequiredCorpus:  decimal.NewFromInt(2038680),
				AnnualIncome:    decimal.NewFromInt(101934),
			},
			domain.BucketStrategy{
				StrategyDetails: details("Bucket Strategy", 92),
				BucketAllocation: domain.BucketAllocation{
					ShortTerm:  domain.Bucket{Percentage: 20, Years: 5, Investments: "Cash, CDs"},
					MediumTerm: domain.Bucket{Percentage: 30, Years: 10, Investments: "Bonds"},
					LongTerm:   domain.Bucket{Percentage: 50, Years: 20, Investments: "Stocks"},
				},
			},
		},
		SensitivityAnalysis: domain.SensitivityResult{
			"inflation_rate": {
				{Change: decimal.NewFromFloat(-0.01), TotalProjected: decimal.NewFromInt(1499973), GapChange: decimal.NewFromInt(240000), PercentageChange: decimal.NewFromFloat(-14.4)},
				{Change: decimal.NewFromFloat(0.01), TotalProjected: decimal.NewFromInt(1499973), GapChange: decimal.NewFromInt(-275000), PercentageChange: decimal.NewFromFloat(16.5)},
			},
		},
		MonteCarloResults: domain.MonteCarloResult{
			SuccessRate:         decimal.NewFromFloat(84.2),
			NumSimulations:      1000,
			AverageFinalBalance: decimal.NewFromInt(310000),
			MedianFinalBalance:  decimal.NewFromInt(120000),
			Percentile10:        decimal.NewFromInt(0),
			Percentile90:        decimal.NewFromInt(910000),
			ScenariosSucceeded:  842,
			RiskAssessment:      domain.RiskMedium,
		},
		TaxAnalysis: domain.TaxAnalysis{
			CurrentTaxRate:               decimal.NewFromFloat(0.22),
			RetirementTaxRate:            decimal.NewFromFloat(0.12),
			AnnualContributionTaxSavings: decimal.NewFromFloat(2112),
			AnnualRetirementTaxBurden:    decimal.NewFromFloat(7200),
			Recommendations:              []string{"Consider Roth conversions in low-income years"},
		},
		YearlyProjections: []domain.YearRecord{
			yr(35, 2026, 50000, domain.PhaseAccumulation),
			yr(36, 2027, 63100, domain.PhaseAccumulation),
			yr(65, 2056, 1499973, domain.PhaseWithdrawal),
		},
		Milestones: []domain.Milestone{
			{GoalName: "2x annual income", TargetAmount: decimal.NewFromInt(150000), TargetAge: 40, YearsToGoal: 5, Priority: 1, GoalType: domain.GoalTypeMilestone},
		},
		Readiness: domain.ReadinessScore{
			Score:           68,
			TimeScore:       decimal.NewFromInt(20),
			SavingsScore:    decimal.NewFromFloat(19.7),
			ProgressScore:   decimal.NewFromFloat(2.2),
			MonteCarloScore: decimal.NewFromFloat(16.8),
			MatchScore:      decimal.NewFromInt(10),
		},
		Recommendations: []domain.Recommendation{
			{
				Type:        "savings_increase",
				Title:       "Increase Monthly Savings",
				Description: "Your plan is short of its target corpus.",
				ActionItems: []string{"Raise contributions by $137/month", "Revisit after your next raise"},
				Priority:    1,
			},
		},
	}
}

func TestConsoleLiteFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "RETIREMENT PLAN SUMMARY") {
		t.Fatalf("expected summary heading, got: %s", content)
	}
	if !strings.Contains(content, "Shortfall:") {
		t.Fatalf("expected shortfall line, got: %s", content)
	}
	if !strings.Contains(content, "Top Recommendation: Increase Monthly Savings") {
		t.Fatalf("expected top recommendation, got: %s", content)
	}
}

func TestConsoleLiteFormatterSurplus(t *testing.T) {
	result := buildTestResult()
	result.SavingsProjections.Shortfall = decimal.Zero
	result.SavingsProjections.Surplus = decimal.NewFromInt(250000)
	out, err := ConsoleFormatter{}.Format(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Surplus:") {
		t.Fatalf("expected surplus line, got: %s", out)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	f := ConsoleVerboseFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, section := range []string{
		"RETIREMENT PLAN ANALYSIS",
		"RETIREMENT NEEDS",
		"SAVINGS PROJECTION",
		"MONTE CARLO SIMULATION (1000 trials)",
		"WITHDRAWAL STRATEGIES",
		"SENSITIVITY ANALYSIS",
		"INFLATION RATE:",
		"TAX ANALYSIS",
		"SAVINGS MILESTONES",
		"RETIREMENT READINESS",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(content, section) {
			t.Errorf("expected section %q in verbose output", section)
		}
	}
	// strategy-specific lines from each variant
	for _, line := range []string{
		"Initial Annual Withdrawal:",
		"Initial Withdrawal Rate:   4.00%",
		"Adjustment Mechanism:",
		"Required Corpus:",
		"Short Term:  20% / 5 yrs (Cash, CDs)",
	} {
		if !strings.Contains(content, line) {
			t.Errorf("expected strategy line %q in verbose output", line)
		}
	}
}

func TestConsoleVerboseFormatterSkippedSimulation(t *testing.T) {
	result := buildTestResult()
	result.MonteCarloResults = domain.MonteCarloResult{Err: "Invalid time parameters"}
	out, err := ConsoleVerboseFormatter{}.Format(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Simulation skipped: Invalid time parameters") {
		t.Fatalf("expected skipped simulation note, got: %s", out)
	}
}

func TestCSVSummarizer(t *testing.T) {
	f := CSVSummarizer{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if lines[0] != "Metric,Value" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	content := string(out)
	for _, metric := range []string{"RetirementCorpusNeeded,1666947.00", "MonteCarloSuccessRate,84.20", "ReadinessScore,68", "RiskAssessment,medium"} {
		if !strings.Contains(content, metric) {
			t.Errorf("expected row %q in summary CSV", metric)
		}
	}
}

func TestCSVDetailedExporter(t *testing.T) {
	f := CSVDetailedExporter{}
	result := buildTestResult()
	out, err := f.Format(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != len(result.YearlyProjections)+1 {
		t.Fatalf("expected %d lines, got %d", len(result.YearlyProjections)+1, len(lines))
	}
	if !strings.HasPrefix(lines[0], "Age,Year,Phase,Balance") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "35,2026,accumulation,50000.00") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], "true") {
		t.Fatalf("expected withdrawal-phase row flagged retired: %q", lines[3])
	}
}

func TestJSONFormatter(t *testing.T) {
	f := JSONFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"metadata", "retirement_needs", "savings_projections", "monte_carlo_results", "yearly_projections", "readiness"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected top-level key %q in JSON output", key)
		}
	}
}

func TestChartFormatterProducesPNG(t *testing.T) {
	f := ChartFormatter{}
	out, err := f.Format(buildTestResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) < 8 || string(out[1:4]) != "PNG" {
		t.Fatalf("expected PNG image bytes, got %d bytes", len(out))
	}
}

func TestChartFormatterRequiresProjection(t *testing.T) {
	result := buildTestResult()
	result.YearlyProjections = result.YearlyProjections[:1]
	if _, err := (ChartFormatter{}).Format(result); err == nil {
		t.Fatal("expected error for single-point projection")
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "console-lite", "csv", "detailed-csv", "json", "chart"} {
		f := GetFormatterByName(name)
		if f == nil {
			t.Fatalf("missing formatter for %q", name)
		}
		if f.Name() != name {
			t.Fatalf("formatter name mismatch: want %q got %q", name, f.Name())
		}
	}
	if GetFormatterByName("carrier-pigeon") != nil {
		t.Fatal("expected nil for unknown format")
	}
}

func TestGetFormatterByNameResolvesAliases(t *testing.T) {
	cases := map[string]string{
		"verbose":      "console",
		"Text":         "console",
		"summary":      "console-lite",
		"csv-detailed": "detailed-csv",
		"PNG":          "chart",
		"json-pretty":  "json",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil {
			t.Fatalf("alias %q did not resolve", alias)
		}
		if f.Name() != want {
			t.Fatalf("alias %q resolved to %q, want %q", alias, f.Name(), want)
		}
	}
}

func TestResolveFormatter(t *testing.T) {
	f, err := ResolveFormatter("verbose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name() != "console" {
		t.Fatalf("got %q", f.Name())
	}

	_, err = ResolveFormatter("smoke-signals")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "detailed-csv") {
		t.Fatalf("error should list formats: %v", err)
	}
}

func TestNormalizeFormatName(t *testing.T) {
	if got := NormalizeFormatName("  VERBOSE "); got != "console" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeFormatName("json"); got != "json" {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultExtension(t *testing.T) {
	cases := map[string]string{
		"console":      "txt",
		"console-lite": "txt",
		"csv":          "csv",
		"csv-detailed": "csv",
		"json":         "json",
		"png":          "png",
		"chart":        "png",
	}
	for format, want := range cases {
		if got := DefaultExtension(format); got != want {
			t.Errorf("DefaultExtension(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestFormatterFuncAdapter(t *testing.T) {
	ff := FormatterFunc{ID: "custom", F: func(*domain.PlanResult) ([]byte, error) { return []byte("ok"), nil }}
	if ff.Name() != "custom" {
		t.Fatalf("got %q", ff.Name())
	}
	out, err := ff.Format(nil)
	if err != nil || string(out) != "ok" {
		t.Fatalf("got %q, %v", out, err)
	}
}
