package calculation

import (
	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// WithdrawalStrategyCatalog builds the comparative assessments of the
// standard withdrawal strategies.
type WithdrawalStrategyCatalog struct {
	Logger Logger
}

// NewWithdrawalStrategyCatalog creates a strategy catalog. A nil logger means no-op.
func NewWithdrawalStrategyCatalog(logger Logger) *WithdrawalStrategyCatalog {
	if logger == nil {
		logger = NopLogger{}
	}
	return &WithdrawalStrategyCatalog{Logger: logger}
}

// Analyze evaluates the four standard strategies against the corpus
// requirement. Success rates are fixed historical heuristics, not outputs of
// the Monte Carlo simulator.
func (c *WithdrawalStrategyCatalog) Analyze(needs domain.RetirementNeeds) []domain.WithdrawalStrategy {
	corpus := needs.RetirementCorpusNeeded

	fourPercent := domain.FourPercentRule{
		StrategyDetails: domain.StrategyDetails{
			Name:        "4% Rule",
			Description: "Withdraw 4% of initial portfolio annually",
			Pros:        []string{"Simple to implement", "Historically successful", "Widely accepted"},
			Cons:        []string{"May not adapt to market volatility", "Fixed percentage"},
			SuccessRate: 95,
		},
		InitialWithdrawal:   corpus.Mul(decimal.NewFromFloat(0.04)),
		SustainabilityYears: 30,
	}

	dynamic := domain.DynamicWithdrawal{
		StrategyDetails: domain.StrategyDetails{
			Name:        "Dynamic Withdrawal",
			Description: "Adjust withdrawal based on portfolio performance",
			Pros:        []string{"Adapts to market conditions", "Can extend portfolio life"},
			Cons:        []string{"Variable income", "More complex"},
			SuccessRate: 98,
		},
		InitialWithdrawalRate: decimal.NewFromFloat(0.04),
		AdjustmentMechanism:   "Portfolio performance based",
	}

	bondLadder := domain.BondLadder{
		StrategyDetails: domain.StrategyDetails{
			Name:        "Bond Ladder",
			Description: "Match bond maturities to yearly expenses",
			Pros:        []string{"Very predictable income", "Low volatility risk"},
			Cons:        []string{"Lower returns", "Inflation risk", "Higher corpus needed"},
			SuccessRate: 90,
		},
		RequiredCorpus: corpus.Mul(decimal.NewFromFloat(1.1)),
		AnnualIncome:   needs.FutureAnnualNeed,
	}

	bucket := domain.BucketStrategy{
		StrategyDetails: domain.StrategyDetails{
			Name:        "Bucket Strategy",
			Description: "Divide portfolio into short, medium, and long-term buckets",
			Pros:        []string{"Balanced approach", "Reduces sequence risk", "Maintains growth"},
			Cons:        []string{"Complex management", "Rebalancing required"},
			SuccessRate: 92,
		},
		BucketAllocation: domain.BucketAllocation{
			ShortTerm:  domain.Bucket{Percentage: 20, Years: 5, Investments: "Cash, CDs"},
			MediumTerm: domain.Bucket{Percentage: 30, Years: 10, Investments: "Bonds, Conservative funds"},
			LongTerm:   domain.Bucket{Percentage: 50, Years: 20, Investments: "Stocks, Growth funds"},
		},
	}

	return []domain.WithdrawalStrategy{fourPercent, dynamic, bondLadder, bucket}
}
