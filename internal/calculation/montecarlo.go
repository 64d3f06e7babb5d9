package calculation

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Simulation defaults. A zero seed or trial count falls back to these, so
// results are reproducible unless the caller opts into a different seed.
const (
	DefaultMonteCarloTrials = 1000
	DefaultMonteCarloSeed   = 42

	// maxConcurrentTrials bounds the number of trial goroutines in flight.
	maxConcurrentTrials = 10
)

// Volatility assumptions applied around the profile's expected rates.
var (
	returnStdDev    = decimal.NewFromFloat(0.15)
	inflationStdDev = decimal.NewFromFloat(0.02)
)

// MonteCarloSimulator estimates the probability that a plan survives the
// withdrawal horizon under randomized annual returns and inflation.
type MonteCarloSimulator struct {
	Needs     *NeedsCalculator
	NumTrials int
	Seed      int64
	Logger    Logger
}

// NewMonteCarloSimulator creates a simulator. Non-positive trials and a zero
// seed fall back to the package defaults. A nil logger means no-op.
func NewMonteCarloSimulator(trials int, seed int64, logger Logger) *MonteCarloSimulator {
	if trials <= 0 {
		trials = DefaultMonteCarloTrials
	}
	if seed == 0 {
		seed = DefaultMonteCarloSeed
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &MonteCarloSimulator{
		Needs:     NewNeedsCalculator(logger),
		NumTrials: trials,
		Seed:      seed,
		Logger:    logger,
	}
}

// trialOutcome is the result of one simulated lifetime.
type trialOutcome struct {
	finalBalance decimal.Decimal
	survived     bool
}

// Run executes all trials and aggregates the distribution of outcomes.
//
// Results are deterministic for a given profile, trial count, and seed: each
// trial draws from its own rand source seeded with Seed+index, so the
// parallel schedule cannot reorder draws between trials.
func (mcs *MonteCarloSimulator) Run(profile *domain.Profile) domain.MonteCarloResult {
	yearsToRetirement := profile.YearsToRetirement()
	retirementYears := profile.RetirementYears()

	if yearsToRetirement <= 0 || retirementYears <= 0 {
		return domain.MonteCarloResult{
			SuccessRate: decimal.Zero,
			Err:         "Invalid time parameters",
		}
	}

	needs := mcs.Needs.Calculate(profile)
	annualContribution := profile.EffectiveMonthlyContribution().Mul(twelve)

	outcomes := make([]trialOutcome, mcs.NumTrials)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentTrials)

	for i := 0; i < mcs.NumTrials; i++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			rng := rand.New(rand.NewSource(mcs.Seed + int64(trial)))
			outcomes[trial] = mcs.runTrial(profile, needs, annualContribution, rng, yearsToRetirement, retirementYears)
		}(i)
	}

	wg.Wait()

	succeeded := 0
	finalBalances := make([]decimal.Decimal, mcs.NumTrials)
	for i, outcome := range outcomes {
		if outcome.survived {
			succeeded++
		}
		finalBalances[i] = decimal.Max(outcome.finalBalance, decimal.Zero)
	}

	sort.Slice(finalBalances, func(i, j int) bool {
		return finalBalances[i].LessThan(finalBalances[j])
	})

	var sum decimal.Decimal
	for _, balance := range finalBalances {
		sum = sum.Add(balance)
	}

	n := len(finalBalances)
	successRate := decimal.NewFromInt(int64(succeeded)).
		Div(decimal.NewFromInt(int64(n))).Mul(hundred)

	mcs.Logger.Debugf("monte carlo: %d/%d trials succeeded (%s%%)",
		succeeded, n, successRate.StringFixed(1))

	return domain.MonteCarloResult{
		SuccessRate:         successRate,
		NumSimulations:      n,
		AverageFinalBalance: sum.Div(decimal.NewFromInt(int64(n))),
		MedianFinalBalance:  finalBalances[n/2],
		Percentile10:        finalBalances[n/10],
		Percentile90:        finalBalances[9*n/10],
		ScenariosSucceeded:  succeeded,
		RiskAssessment:      assessRiskLevel(successRate),
	}
}

// runTrial simulates one lifetime. All random draws for the trial happen up
// front in a fixed order (accumulation returns, withdrawal returns, inflation)
// so the outcome depends only on the trial's seed.
func (mcs *MonteCarloSimulator) runTrial(profile *domain.Profile, needs domain.RetirementNeeds, annualContribution decimal.Decimal, rng *rand.Rand, yearsToRetirement, retirementYears int) trialOutcome {
	accumulationReturns := make([]decimal.Decimal, yearsToRetirement)
	for i := range accumulationReturns {
		accumulationReturns[i] = normalDraw(rng, profile.PreRetirementReturnRate, returnStdDev)
	}
	withdrawalReturns := make([]decimal.Decimal, retirementYears)
	for i := range withdrawalReturns {
		withdrawalReturns[i] = normalDraw(rng, profile.PostRetirementReturnRate, returnStdDev)
	}
	inflationRates := make([]decimal.Decimal, yearsToRetirement+retirementYears)
	for i := range inflationRates {
		inflationRates[i] = normalDraw(rng, profile.InflationRate, inflationStdDev)
	}

	balance := profile.CurrentSavings
	contribution := annualContribution

	// Accumulation: grow the balance, add the contribution, inflate it.
	for year, annualReturn := range accumulationReturns {
		balance = balance.Mul(one.Add(annualReturn)).Add(contribution)
		contribution = contribution.Mul(one.Add(inflationRates[year]))
	}

	// Withdrawal: grow the balance, take the inflation-adjusted withdrawal.
	survived := true
	for year, annualReturn := range withdrawalReturns {
		withdrawal := needs.FutureAnnualNeed.Mul(
			one.Add(inflationRates[yearsToRetirement+year]).Pow(decimal.NewFromInt(int64(year))))
		balance = balance.Mul(one.Add(annualReturn)).Sub(withdrawal)
		if balance.LessThanOrEqual(decimal.Zero) {
			survived = false
			break
		}
	}

	return trialOutcome{finalBalance: balance, survived: survived}
}

// normalDraw samples Normal(mean, stdDev) using the Box-Muller transform,
// capped at three standard deviations to keep extreme tails out.
func normalDraw(rng *rand.Rand, mean, stdDev decimal.Decimal) decimal.Decimal {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)

	variability := decimal.NewFromFloat(z).Mul(stdDev)
	maxVariability := stdDev.Mul(decimal.NewFromInt(3))
	if variability.GreaterThan(maxVariability) {
		variability = maxVariability
	} else if variability.LessThan(maxVariability.Neg()) {
		variability = maxVariability.Neg()
	}
	return mean.Add(variability)
}

// assessRiskLevel buckets a success rate into a risk label.
func assessRiskLevel(successRate decimal.Decimal) string {
	switch {
	case successRate.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return domain.RiskLow
	case successRate.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return domain.RiskMedium
	case successRate.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}
