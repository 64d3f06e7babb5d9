package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/retirement-engine/internal/domain"
)

// Message codes attached to plan results.
const (
	CodeMonteCarloInvalidHorizon = "MC_INVALID_HORIZON"
)

// PlanOptions tunes a single ComputePlan call. Zero values mean defaults:
// 1000 trials, seed 42, and the current calendar year as the projection base.
type PlanOptions struct {
	Trials   int
	Seed     int64
	BaseYear int
}

// PlanningEngine orchestrates all retirement calculations.
type PlanningEngine struct {
	Needs       *NeedsCalculator
	Projection  *ProjectionEngine
	Sensitivity *SensitivityAnalyzer
	Strategies  *WithdrawalStrategyCatalog
	Taxes       *TaxEstimator
	Goals       *GoalFeasibilityEvaluator
	Readiness   *ReadinessScorer
	Logger      Logger
}

// NewPlanningEngine creates a planning engine with a no-op logger.
func NewPlanningEngine() *PlanningEngine {
	logger := NopLogger{}
	projection := NewProjectionEngine(logger)
	return &PlanningEngine{
		Needs:       NewNeedsCalculator(logger),
		Projection:  projection,
		Sensitivity: &SensitivityAnalyzer{Projection: projection, Logger: logger},
		Strategies:  NewWithdrawalStrategyCatalog(logger),
		Taxes:       NewTaxEstimator(logger),
		Goals:       NewGoalFeasibilityEvaluator(logger),
		Readiness:   NewReadinessScorer(logger),
		Logger:      logger,
	}
}

// SetLogger sets the logger for the engine and all of its components. If nil
// is provided, a no-op logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	pe.Logger = l
	pe.Needs.Logger = l
	pe.Projection.Logger = l
	pe.Projection.Needs.Logger = l
	pe.Sensitivity.Logger = l
	pe.Sensitivity.Projection.Logger = l
	pe.Strategies.Logger = l
	pe.Taxes.Logger = l
	pe.Goals.Logger = l
	pe.Goals.Needs.Logger = l
	pe.Readiness.Logger = l
}

// ComputePlan runs the full calculation set for one profile and assembles the
// plan result. The profile is validated first; an invalid profile fails fast
// with no partial result. Non-fatal conditions are reported as messages on
// the result instead of errors.
func (pe *PlanningEngine) ComputePlan(ctx context.Context, profile *domain.Profile, opts PlanOptions) (*domain.PlanResult, error) {
	started := nowFunc()

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	// Per-call projection base year without mutating shared engine state.
	projection := pe.Projection
	if opts.BaseYear != 0 {
		clone := *pe.Projection
		clone.BaseYear = opts.BaseYear
		projection = &clone
	}

	needs := pe.Needs.Calculate(profile)
	savings := projection.CalculateSavingsProjection(profile)
	yearly := projection.GenerateYearlyProjection(profile)
	sensitivity := pe.Sensitivity.Analyze(profile)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("plan computation canceled: %w", err)
	}

	simulator := NewMonteCarloSimulator(opts.Trials, opts.Seed, pe.Logger)
	monteCarlo := simulator.Run(profile)

	strategies := pe.Strategies.Analyze(needs)
	taxes := pe.Taxes.Analyze(profile)
	milestones := pe.Goals.Milestones(profile)
	readiness := pe.Readiness.Score(profile, needs, savings, monteCarlo)
	recommendations := pe.Readiness.Recommendations(profile, savings, monteCarlo)

	var messages []domain.Message
	if monteCarlo.Err != "" {
		messages = append(messages, domain.Message{
			ID:      len(messages),
			Level:   domain.LevelWarning,
			Code:    CodeMonteCarloInvalidHorizon,
			Message: fmt.Sprintf("monte carlo simulation skipped: %s", monteCarlo.Err),
		})
	}

	outcome := domain.OutcomeSuccess
	for _, m := range messages {
		if m.Level == domain.LevelCritical {
			outcome = domain.OutcomeFailure
			break
		}
	}

	completed := nowFunc()
	result := &domain.PlanResult{
		Metadata: domain.PlanMetadata{
			CalculationID: uuid.New().String(),
			StartedAt:     started.UTC().Format(time.RFC3339),
			CompletedAt:   completed.UTC().Format(time.RFC3339),
			DurationMs:    completed.Sub(started).Milliseconds(),
			Outcome:       outcome,
		},
		RetirementNeeds:      needs,
		SavingsProjections:   savings,
		WithdrawalStrategies: strategies,
		SensitivityAnalysis:  sensitivity,
		MonteCarloResults:    monteCarlo,
		TaxAnalysis:          taxes,
		YearlyProjections:    yearly,
		Milestones:           milestones,
		Readiness:            readiness,
		Recommendations:      recommendations,
		Messages:             messages,
	}

	pe.Logger.Infof("plan %s computed in %dms (outcome %s, readiness %d)",
		result.Metadata.CalculationID, result.Metadata.DurationMs, outcome, readiness.Score)

	return result, nil
}
