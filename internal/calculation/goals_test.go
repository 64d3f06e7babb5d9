package calculation

import (
	"testing"

	"github.com/planwise/retirement-engine/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMilestonesBaseline(t *testing.T) {
	ge := NewGoalFeasibilityEvaluator(nil)
	milestones := ge.Milestones(testProfile())

	// Ages 40 through 60 in five-year steps, the retirement-age multiple,
	// and the corpus goal.
	if len(milestones) != 7 {
		t.Fatalf("want 7 milestones, got %d", len(milestones))
	}

	wantAges := []int{40, 45, 50, 55, 60, 65}
	wantMultiples := []int64{3, 4, 6, 7, 8, 10}
	for i, m := range milestones[:6] {
		if m.TargetAge != wantAges[i] {
			t.Errorf("milestone %d: want age %d, got %d", i, wantAges[i], m.TargetAge)
		}
		wantAmount := decimal.NewFromInt(75000 * wantMultiples[i])
		if !m.TargetAmount.Equal(wantAmount) {
			t.Errorf("milestone %d: want target %s, got %s", i, wantAmount, m.TargetAmount)
		}
		if m.GoalType != domain.GoalTypeMilestone {
			t.Errorf("milestone %d: want type %s, got %s", i, domain.GoalTypeMilestone, m.GoalType)
		}
		if m.YearsToGoal != wantAges[i]-35 {
			t.Errorf("milestone %d: want %d years, got %d", i, wantAges[i]-35, m.YearsToGoal)
		}
	}

	// Only the age-40 milestone sits within the five-year priority window.
	if milestones[0].Priority != 1 {
		t.Errorf("age 40 priority: want 1, got %d", milestones[0].Priority)
	}
	for _, m := range milestones[1:6] {
		if m.Priority != 2 {
			t.Errorf("age %d priority: want 2, got %d", m.TargetAge, m.Priority)
		}
	}

	final := milestones[6]
	if final.GoalName != "Retirement Corpus" {
		t.Errorf("final goal name: got %q", final.GoalName)
	}
	if final.GoalType != domain.GoalTypeFinalCorpus {
		t.Errorf("final goal type: want %s, got %s", domain.GoalTypeFinalCorpus, final.GoalType)
	}
	if final.Priority != 1 || final.TargetAge != 65 || final.YearsToGoal != 30 {
		t.Errorf("final goal: priority %d age %d years %d", final.Priority, final.TargetAge, final.YearsToGoal)
	}
	if !near(final.TargetAmount, 1666947, 200) {
		t.Errorf("final target: want ~1666947, got %s", final.TargetAmount)
	}
}

func TestMilestonesSkipPastAndFutureAges(t *testing.T) {
	p := testProfile()
	p.CurrentAge = 58
	p.RetirementAge = 60

	milestones := NewGoalFeasibilityEvaluator(nil).Milestones(p)

	// Age 60 appears twice: the fixed-ladder entry and the retirement-age
	// entry, then the corpus goal.
	if len(milestones) != 3 {
		t.Fatalf("want 3 milestones, got %d", len(milestones))
	}
	if milestones[0].TargetAge != 60 || milestones[1].TargetAge != 60 {
		t.Errorf("ages: want 60/60, got %d/%d", milestones[0].TargetAge, milestones[1].TargetAge)
	}
	if !milestones[0].TargetAmount.Equal(decimal.NewFromInt(600000)) {
		t.Errorf("ladder target: want 600000, got %s", milestones[0].TargetAmount)
	}
	if !milestones[1].TargetAmount.Equal(decimal.NewFromInt(750000)) {
		t.Errorf("retirement-age target: want 750000, got %s", milestones[1].TargetAmount)
	}
	if milestones[0].Priority != 1 || milestones[1].Priority != 1 {
		t.Error("milestones within five years should have priority 1")
	}
}

func TestGoalFeasibility(t *testing.T) {
	ge := NewGoalFeasibilityEvaluator(nil)
	savings := decimal.NewFromInt(20000)
	monthly := decimal.NewFromInt(500)

	t.Run("reachable goal", func(t *testing.T) {
		f := ge.Feasibility(decimal.NewFromInt(100000), 10, savings, monthly)
		if !f.Feasible {
			t.Error("want feasible")
		}
		if !near(f.ProjectedAmount, 122241.7, 5) {
			t.Errorf("projected: want ~122242, got %s", f.ProjectedAmount)
		}
		if !f.Gap.IsZero() {
			t.Errorf("gap: want 0, got %s", f.Gap)
		}
		if !f.AdditionalMonthlyNeeded.IsZero() {
			t.Errorf("additional monthly: want 0, got %s", f.AdditionalMonthlyNeeded)
		}
		if !f.SuccessProbability.Equal(hundred) {
			t.Errorf("success probability: want 100, got %s", f.SuccessProbability)
		}
	})

	t.Run("unreachable goal", func(t *testing.T) {
		f := ge.Feasibility(decimal.NewFromInt(200000), 10, savings, monthly)
		if f.Feasible {
			t.Error("want infeasible")
		}
		if !near(f.Gap, 77758.3, 5) {
			t.Errorf("gap: want ~77758, got %s", f.Gap)
		}
		if !near(f.AdditionalMonthlyNeeded, 449.25, 1) {
			t.Errorf("additional monthly: want ~449, got %s", f.AdditionalMonthlyNeeded)
		}
		if !near(f.SuccessProbability, 61.12, 0.1) {
			t.Errorf("success probability: want ~61.12, got %s", f.SuccessProbability)
		}
	})

	t.Run("no time remaining", func(t *testing.T) {
		f := ge.Feasibility(decimal.NewFromInt(100000), 0, savings, monthly)
		if f.Feasible {
			t.Error("want infeasible")
		}
		if f.Reason != "No time remaining" {
			t.Errorf("reason: got %q", f.Reason)
		}
	})

	t.Run("zero goal is trivially met", func(t *testing.T) {
		f := ge.Feasibility(decimal.Zero, 10, decimal.Zero, decimal.Zero)
		if !f.Feasible {
			t.Error("want feasible")
		}
		if !f.SuccessProbability.Equal(hundred) {
			t.Errorf("success probability: want 100, got %s", f.SuccessProbability)
		}
	})
}
