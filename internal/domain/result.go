package domain

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Projection phases.
const (
	PhaseAccumulation = "accumulation"
	PhaseWithdrawal   = "withdrawal"
)

// Plan outcome states.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// Message severity levels.
const (
	LevelInfo     = "INFO"
	LevelWarning  = "WARNING"
	LevelCritical = "CRITICAL"
)

// Risk assessment buckets derived from the Monte Carlo success rate.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskVeryHigh = "very_high"
)

// RetirementNeeds is the corpus requirement derived from a profile.
type RetirementNeeds struct {
	DesiredAnnualIncomeToday decimal.Decimal `yaml:"desired_annual_income_today" json:"desired_annual_income_today"`
	NetIncomeNeeded          decimal.Decimal `yaml:"net_income_needed" json:"net_income_needed"`
	TotalAnnualNeedToday     decimal.Decimal `yaml:"total_annual_need_today" json:"total_annual_need_today"`
	FutureAnnualNeed         decimal.Decimal `yaml:"future_annual_need" json:"future_annual_need"`
	RetirementCorpusNeeded   decimal.Decimal `yaml:"retirement_corpus_needed" json:"retirement_corpus_needed"`
	YearsToRetirement        int             `yaml:"years_to_retirement" json:"years_to_retirement"`
	RetirementYears          int             `yaml:"retirement_years" json:"retirement_years"`
	InflationFactor          decimal.Decimal `yaml:"inflation_factor" json:"inflation_factor"`
}

// SavingsProjection is the closed-form growth projection to retirement age.
// Exactly one of Shortfall and Surplus is non-zero.
type SavingsProjection struct {
	CurrentSavingsFutureValue    decimal.Decimal `yaml:"current_savings_future_value" json:"current_savings_future_value"`
	ContributionsFutureValue     decimal.Decimal `yaml:"contributions_future_value" json:"contributions_future_value"`
	TotalProjectedSavings        decimal.Decimal `yaml:"total_projected_savings" json:"total_projected_savings"`
	CorpusNeeded                 decimal.Decimal `yaml:"corpus_needed" json:"corpus_needed"`
	Shortfall                    decimal.Decimal `yaml:"shortfall" json:"shortfall"`
	Surplus                      decimal.Decimal `yaml:"surplus" json:"surplus"`
	AdditionalMonthlyNeeded      decimal.Decimal `yaml:"additional_monthly_needed" json:"additional_monthly_needed"`
	EffectiveMonthlyContribution decimal.Decimal `yaml:"effective_monthly_contribution" json:"effective_monthly_contribution"`
	SavingsRatePercentage        decimal.Decimal `yaml:"savings_rate_percentage" json:"savings_rate_percentage"`
}

// YearRecord is a single row of the year-by-year balance walk. Balance is the
// start-of-year figure; NetChange is what the year added or removed.
type YearRecord struct {
	Age              int             `yaml:"age" json:"age"`
	Year             int             `yaml:"year" json:"year"`
	Balance          decimal.Decimal `yaml:"balance" json:"balance"`
	Phase            string          `yaml:"phase" json:"phase"`
	Contribution     decimal.Decimal `yaml:"contribution" json:"contribution"`
	InvestmentReturn decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	Withdrawal       decimal.Decimal `yaml:"withdrawal" json:"withdrawal"`
	NetChange        decimal.Decimal `yaml:"net_change" json:"net_change"`
}

// SensitivityPoint records the projected savings under one assumption change.
type SensitivityPoint struct {
	Change           decimal.Decimal `yaml:"change" json:"change"`
	TotalProjected   decimal.Decimal `yaml:"total_projected" json:"total_projected"`
	GapChange        decimal.Decimal `yaml:"gap_change" json:"gap_change"`
	PercentageChange decimal.Decimal `yaml:"percentage_change" json:"percentage_change"`
}

// SensitivityResult maps a variable name to its ordered sweep results.
type SensitivityResult map[string][]SensitivityPoint

// MonteCarloResult aggregates the stochastic trial outcomes.
type MonteCarloResult struct {
	SuccessRate         decimal.Decimal `yaml:"success_rate" json:"success_rate"`
	NumSimulations      int             `yaml:"num_simulations" json:"num_simulations"`
	AverageFinalBalance decimal.Decimal `yaml:"average_final_balance" json:"average_final_balance"`
	MedianFinalBalance  decimal.Decimal `yaml:"median_final_balance" json:"median_final_balance"`
	Percentile10        decimal.Decimal `yaml:"percentile_10" json:"percentile_10"`
	Percentile90        decimal.Decimal `yaml:"percentile_90" json:"percentile_90"`
	ScenariosSucceeded  int             `yaml:"scenarios_succeeded" json:"scenarios_succeeded"`
	RiskAssessment      string          `yaml:"risk_assessment,omitempty" json:"risk_assessment,omitempty"`
	Err                 string          `yaml:"error,omitempty" json:"error,omitempty"`
}

// StrategyDetails carries the descriptive fields shared by every withdrawal
// strategy variant.
type StrategyDetails struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Pros        []string `yaml:"pros" json:"pros"`
	Cons        []string `yaml:"cons" json:"cons"`
	SuccessRate int      `yaml:"success_rate" json:"success_rate"`
}

// WithdrawalStrategy is one evaluated withdrawal approach. Each concrete type
// carries its own quantitative fields on top of the shared details.
type WithdrawalStrategy interface {
	Kind() string
	Details() StrategyDetails
}

// FourPercentRule withdraws a fixed share of the initial portfolio each year.
type FourPercentRule struct {
	StrategyDetails     `yaml:",inline"`
	InitialWithdrawal   decimal.Decimal `yaml:"initial_withdrawal" json:"initial_withdrawal"`
	SustainabilityYears int             `yaml:"sustainability_years" json:"sustainability_years"`
}

func (FourPercentRule) Kind() string { return "four_percent_rule" }

// Details returns the shared descriptive fields.
func (s FourPercentRule) Details() StrategyDetails { return s.StrategyDetails }

// MarshalJSON adds the kind discriminator to the variant's fields.
func (s FourPercentRule) MarshalJSON() ([]byte, error) {
	type plain FourPercentRule
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{Kind: s.Kind(), plain: plain(s)})
}

// DynamicWithdrawal adjusts the withdrawal rate with portfolio performance.
type DynamicWithdrawal struct {
	StrategyDetails       `yaml:",inline"`
	InitialWithdrawalRate decimal.Decimal `yaml:"initial_withdrawal_rate" json:"initial_withdrawal_rate"`
	AdjustmentMechanism   string          `yaml:"adjustment_mechanism" json:"adjustment_mechanism"`
}

func (DynamicWithdrawal) Kind() string { return "dynamic_withdrawal" }

// Details returns the shared descriptive fields.
func (s DynamicWithdrawal) Details() StrategyDetails { return s.StrategyDetails }

// MarshalJSON adds the kind discriminator to the variant's fields.
func (s DynamicWithdrawal) MarshalJSON() ([]byte, error) {
	type plain DynamicWithdrawal
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{Kind: s.Kind(), plain: plain(s)})
}

// BondLadder matches bond maturities to yearly expenses.
type BondLadder struct {
	StrategyDetails `yaml:",inline"`
	RequiredCorpus  decimal.Decimal `yaml:"required_corpus" json:"required_corpus"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income" json:"annual_income"`
}

func (BondLadder) Kind() string { return "bond_ladder" }

// Details returns the shared descriptive fields.
func (s BondLadder) Details() StrategyDetails { return s.StrategyDetails }

// MarshalJSON adds the kind discriminator to the variant's fields.
func (s BondLadder) MarshalJSON() ([]byte, error) {
	type plain BondLadder
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{Kind: s.Kind(), plain: plain(s)})
}

// Bucket is one time-horizon slice of a bucket strategy.
type Bucket struct {
	Percentage  int    `yaml:"percentage" json:"percentage"`
	Years       int    `yaml:"years" json:"years"`
	Investments string `yaml:"investments" json:"investments"`
}

// BucketAllocation splits the portfolio across time horizons.
type BucketAllocation struct {
	ShortTerm  Bucket `yaml:"short_term" json:"short_term"`
	MediumTerm Bucket `yaml:"medium_term" json:"medium_term"`
	LongTerm   Bucket `yaml:"long_term" json:"long_term"`
}

// BucketStrategy divides the portfolio into short, medium, and long-term
// buckets.
type BucketStrategy struct {
	StrategyDetails  `yaml:",inline"`
	BucketAllocation BucketAllocation `yaml:"bucket_allocation" json:"bucket_allocation"`
}

func (BucketStrategy) Kind() string { return "bucket_strategy" }

// Details returns the shared descriptive fields.
func (s BucketStrategy) Details() StrategyDetails { return s.StrategyDetails }

// MarshalJSON adds the kind discriminator to the variant's fields.
func (s BucketStrategy) MarshalJSON() ([]byte, error) {
	type plain BucketStrategy
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{Kind: s.Kind(), plain: plain(s)})
}

// TaxAnalysis is the simplified bracket-based tax estimate.
type TaxAnalysis struct {
	CurrentTaxRate               decimal.Decimal `yaml:"current_tax_rate" json:"current_tax_rate"`
	RetirementTaxRate            decimal.Decimal `yaml:"retirement_tax_rate" json:"retirement_tax_rate"`
	AnnualContributionTaxSavings decimal.Decimal `yaml:"annual_contribution_tax_savings" json:"annual_contribution_tax_savings"`
	AnnualRetirementTaxBurden    decimal.Decimal `yaml:"annual_retirement_tax_burden" json:"annual_retirement_tax_burden"`
	TaxRateDifference            decimal.Decimal `yaml:"tax_rate_difference" json:"tax_rate_difference"`
	Recommendations              []string        `yaml:"recommendations" json:"recommendations"`
}

// Goal types for milestones.
const (
	GoalTypeMilestone   = "milestone"
	GoalTypeFinalCorpus = "final_corpus"
)

// Milestone is an age-based savings target.
type Milestone struct {
	GoalName     string          `yaml:"goal_name" json:"goal_name"`
	Description  string          `yaml:"description" json:"description"`
	TargetAmount decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	TargetAge    int             `yaml:"target_age" json:"target_age"`
	YearsToGoal  int             `yaml:"years_to_goal" json:"years_to_goal"`
	Priority     int             `yaml:"priority" json:"priority"`
	GoalType     string          `yaml:"goal_type" json:"goal_type"`
}

// GoalFeasibility answers whether a savings target is reachable at the
// current contribution rate.
type GoalFeasibility struct {
	Feasible                bool            `yaml:"feasible" json:"feasible"`
	Reason                  string          `yaml:"reason,omitempty" json:"reason,omitempty"`
	ProjectedAmount         decimal.Decimal `yaml:"projected_amount" json:"projected_amount"`
	Gap                     decimal.Decimal `yaml:"gap" json:"gap"`
	AdditionalMonthlyNeeded decimal.Decimal `yaml:"additional_monthly_needed" json:"additional_monthly_needed"`
	SuccessProbability      decimal.Decimal `yaml:"success_probability" json:"success_probability"`
}

// SocialSecurityEstimate is the simplified AIME/PIA benefit estimate.
type SocialSecurityEstimate struct {
	MonthlyBenefit    decimal.Decimal `yaml:"monthly_benefit" json:"monthly_benefit"`
	AnnualBenefit     decimal.Decimal `yaml:"annual_benefit" json:"annual_benefit"`
	FullRetirementAge int             `yaml:"full_retirement_age" json:"full_retirement_age"`
	AIME              decimal.Decimal `yaml:"aime" json:"aime"`
	Note              string          `yaml:"note" json:"note"`
}

// InflationImpact quantifies what inflation does to an amount over time.
type InflationImpact struct {
	OriginalAmount        decimal.Decimal `yaml:"original_amount" json:"original_amount"`
	FutureNominalValue    decimal.Decimal `yaml:"future_nominal_value" json:"future_nominal_value"`
	FuturePurchasingPower decimal.Decimal `yaml:"future_purchasing_power" json:"future_purchasing_power"`
	InflationErosion      decimal.Decimal `yaml:"inflation_erosion" json:"inflation_erosion"`
	ErosionPercentage     decimal.Decimal `yaml:"erosion_percentage" json:"erosion_percentage"`
}

// CompoundGrowth is the future value of a principal with regular
// contributions.
type CompoundGrowth struct {
	Principal             decimal.Decimal `yaml:"principal" json:"principal"`
	TotalContributions    decimal.Decimal `yaml:"total_contributions" json:"total_contributions"`
	InvestmentGrowth      decimal.Decimal `yaml:"investment_growth" json:"investment_growth"`
	FinalValue            decimal.Decimal `yaml:"final_value" json:"final_value"`
	TotalReturnPercentage decimal.Decimal `yaml:"total_return_percentage" json:"total_return_percentage"`
}

// RequiredSavingsRate is the savings rate needed to hit a retirement income
// goal under the 4% rule.
type RequiredSavingsRate struct {
	RequiredCorpus                decimal.Decimal `yaml:"required_corpus" json:"required_corpus"`
	CurrentSavingsFutureValue     decimal.Decimal `yaml:"current_savings_fv" json:"current_savings_fv"`
	AdditionalCorpusNeeded        decimal.Decimal `yaml:"additional_corpus_needed" json:"additional_corpus_needed"`
	RequiredAnnualSavings         decimal.Decimal `yaml:"required_annual_savings" json:"required_annual_savings"`
	RequiredMonthlySavings        decimal.Decimal `yaml:"required_monthly_savings" json:"required_monthly_savings"`
	RequiredSavingsRatePercentage decimal.Decimal `yaml:"required_savings_rate_percentage" json:"required_savings_rate_percentage"`
	IsFeasible                    bool            `yaml:"is_feasible" json:"is_feasible"`
}

// CatchUpStrategy is one way to close a retirement shortfall.
type CatchUpStrategy struct {
	Strategy          string          `yaml:"strategy" json:"strategy"`
	Description       string          `yaml:"description" json:"description"`
	AdditionalMonthly decimal.Decimal `yaml:"additional_monthly" json:"additional_monthly"`
	TotalAdditional   decimal.Decimal `yaml:"total_additional,omitempty" json:"total_additional,omitempty"`
	ExtraYears        int             `yaml:"extra_years,omitempty" json:"extra_years,omitempty"`
	ExpenseReduction  decimal.Decimal `yaml:"expense_reduction,omitempty" json:"expense_reduction,omitempty"`
	Feasibility       string          `yaml:"feasibility" json:"feasibility"`
}

// RiskFactorRatings scores plan risk factors on a 1-10 scale, 10 being the
// highest risk.
type RiskFactorRatings struct {
	TimeHorizon       int `yaml:"time_horizon" json:"time_horizon"`
	SavingsRate       int `yaml:"savings_rate" json:"savings_rate"`
	ReturnAssumptions int `yaml:"return_assumptions" json:"return_assumptions"`
	MarketConditions  int `yaml:"market_conditions" json:"market_conditions"`
	Inflation         int `yaml:"inflation" json:"inflation"`
	Longevity         int `yaml:"longevity" json:"longevity"`
}

// ReadinessScore is the 0-100 composite readiness score with its weighted
// components.
type ReadinessScore struct {
	Score           int             `yaml:"score" json:"score"`
	TimeScore       decimal.Decimal `yaml:"time_score" json:"time_score"`
	SavingsScore    decimal.Decimal `yaml:"savings_score" json:"savings_score"`
	ProgressScore   decimal.Decimal `yaml:"progress_score" json:"progress_score"`
	MonteCarloScore decimal.Decimal `yaml:"monte_carlo_score" json:"monte_carlo_score"`
	MatchScore      decimal.Decimal `yaml:"match_score" json:"match_score"`
}

// Recommendation is one prioritized action for the plan holder.
type Recommendation struct {
	Type        string   `yaml:"type" json:"type"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	ActionItems []string `yaml:"action_items" json:"action_items"`
	Priority    int      `yaml:"priority" json:"priority"`
}

// Message is a report-and-continue diagnostic attached to a plan result.
type Message struct {
	ID      int    `yaml:"id" json:"id"`
	Level   string `yaml:"level" json:"level"`
	Code    string `yaml:"code" json:"code"`
	Message string `yaml:"message" json:"message"`
}

// PlanMetadata identifies and times one engine invocation.
type PlanMetadata struct {
	CalculationID string `yaml:"calculation_id" json:"calculation_id"`
	StartedAt     string `yaml:"started_at" json:"started_at"`
	CompletedAt   string `yaml:"completed_at" json:"completed_at"`
	DurationMs    int64  `yaml:"duration_ms" json:"duration_ms"`
	Outcome       string `yaml:"outcome" json:"outcome"`
}

// PlanResult is the complete output of one ComputePlan call.
type PlanResult struct {
	Metadata             PlanMetadata         `yaml:"metadata" json:"metadata"`
	RetirementNeeds      RetirementNeeds      `yaml:"retirement_needs" json:"retirement_needs"`
	SavingsProjections   SavingsProjection    `yaml:"savings_projections" json:"savings_projections"`
	WithdrawalStrategies []WithdrawalStrategy `yaml:"withdrawal_strategies" json:"withdrawal_strategies"`
	SensitivityAnalysis  SensitivityResult    `yaml:"sensitivity_analysis" json:"sensitivity_analysis"`
	MonteCarloResults    MonteCarloResult     `yaml:"monte_carlo_results" json:"monte_carlo_results"`
	TaxAnalysis          TaxAnalysis          `yaml:"tax_analysis" json:"tax_analysis"`
	YearlyProjections    []YearRecord         `yaml:"yearly_projections" json:"yearly_projections"`
	Milestones           []Milestone          `yaml:"milestones" json:"milestones"`
	Readiness            ReadinessScore       `yaml:"readiness" json:"readiness"`
	Recommendations      []Recommendation     `yaml:"recommendations" json:"recommendations"`
	Messages             []Message            `yaml:"messages" json:"messages"`
}
