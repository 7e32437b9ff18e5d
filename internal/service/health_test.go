package service

import (
	"testing"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
)

func activeGoal(id uint, goalType model.GoalType, current, target string) model.Goal {
	return model.Goal{
		BaseModel:     model.BaseModel{ID: id},
		Type:          goalType,
		Status:        model.GoalActive,
		CurrentAmount: dec(current),
		TargetAmount:  dec(target),
	}
}

func TestScoreWeighsFourPillars(t *testing.T) {
	goals := []model.Goal{
		activeGoal(1, model.GoalEmergencyFund, "500", "1000"), // 50%
		activeGoal(2, model.GoalDebtPayment, "1000", "1000"),  // 100%
		activeGoal(3, model.GoalVacation, "250", "1000"),      // 25%
		activeGoal(4, model.GoalRetirement, "0", "1000"),      // 0%
	}
	svc := NewFinancialHealthService(&fakeGoalLister{goals: goals})

	report, err := svc.Score(1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	// 0.5*0.30 + 1.0*0.25 + 0.25*0.25 + 0*0.20 = 0.4625
	if report.OverallScore != 46.25 {
		t.Errorf("score = %v, want 46.25", report.OverallScore)
	}
	if report.GoalContribution != report.OverallScore {
		t.Errorf("goal contribution diverged from the overall score")
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("emergency fund exists, no recommendation expected: %v", report.Recommendations)
	}
}

func TestScoreIgnoresInactiveGoalsAndClampsOverfunding(t *testing.T) {
	overfunded := activeGoal(1, model.GoalEmergencyFund, "3000", "1000")
	completed := activeGoal(2, model.GoalDebtPayment, "1000", "1000")
	completed.Status = model.GoalCompleted
	paused := activeGoal(3, model.GoalSavings, "1000", "1000")
	paused.Status = model.GoalPaused

	svc := NewFinancialHealthService(&fakeGoalLister{goals: []model.Goal{overfunded, completed, paused}})

	report, err := svc.Score(1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	// only the overfunded emergency goal counts, clamped to 100%
	if report.OverallScore != 30 {
		t.Errorf("score = %v, want 30", report.OverallScore)
	}
}

func TestScoreRecommendsEmergencyFundWhenMissing(t *testing.T) {
	goals := []model.Goal{activeGoal(1, model.GoalSavings, "500", "1000")}
	svc := NewFinancialHealthService(&fakeGoalLister{goals: goals})

	report, err := svc.Score(1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if report.OverallScore != 12.5 {
		t.Errorf("score = %v, want 12.5", report.OverallScore)
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("expected the emergency fund recommendation, got %v", report.Recommendations)
	}
}

func TestScoreEmptyWorkspace(t *testing.T) {
	svc := NewFinancialHealthService(&fakeGoalLister{})

	report, err := svc.Score(1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if report.OverallScore != 0 {
		t.Errorf("score = %v, want 0", report.OverallScore)
	}
	if len(report.Recommendations) != 1 {
		t.Errorf("empty workspace still needs the emergency fund nudge")
	}
}

func TestEstimatePayoffTimeline(t *testing.T) {
	cases := []struct {
		remaining  string
		disposable string
		want       string
	}{
		{"1200", "1000", "6 months"},     // 20% of 1000 = 200/month
		{"2400", "1000", "12 months"},    // exactly a year stays in months
		{"2600", "1000", "2 years"},      // 13 months rounds up to years
		{"500", "100", "5 months"},       // 20 under the floor, pay 100
		{"50", "5000000", "1 months"},    // tiny balance floors at one month
		{"120000", "1000", "50 years"},   // 600 months
	}
	for _, c := range cases {
		got := EstimatePayoffTimeline(dec(c.remaining), dec(c.disposable))
		if got != c.want {
			t.Errorf("EstimatePayoffTimeline(%s, %s) = %q, want %q", c.remaining, c.disposable, got, c.want)
		}
	}
}
