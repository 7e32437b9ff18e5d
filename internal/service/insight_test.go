package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
)

func newInsightFixture(goal *model.Goal) (*InsightGenerator, *fakeContributionStore, *fakeInsightStore) {
	contributions := newFakeContributionStore()
	insights := &fakeInsightStore{}
	gen := NewInsightGenerator(newFakeGoalStore(goal), contributions, insights)
	return gen, contributions, insights
}

func findInsight(t *testing.T, insights []model.GoalInsight, title string) *model.GoalInsight {
	t.Helper()
	for i := range insights {
		if insights[i].Title == title {
			return &insights[i]
		}
	}
	t.Fatalf("no insight titled %q in %d insights", title, len(insights))
	return nil
}

func TestGenerateAtRiskInsight(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	goal := &model.Goal{
		BaseModel:      model.BaseModel{ID: 1},
		WorkspaceID:    1,
		Name:           "Bali Trip",
		Type:           model.GoalVacation,
		Status:         model.GoalActive,
		TargetAmount:   dec("12000000"),
		CurrentAmount:  dec("1000000"), // 8.3%
		TargetDate:     now.AddDate(0, 0, 60),
		IsAutoTracking: true,
	}
	gen, _, store := newInsightFixture(goal)

	insights, err := gen.Generate(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	atRisk := findInsight(t, insights, "Goal At Risk")
	if atRisk.Type != model.InsightAlert || atRisk.Severity != model.SeverityWarning {
		t.Errorf("at-risk insight must be a warning alert, got %s/%s", atRisk.Type, atRisk.Severity)
	}
	if !atRisk.ActionRequired {
		t.Errorf("at-risk insight must require action")
	}

	var payload struct {
		DaysLeft          int    `json:"daysLeft"`
		SuggestedIncrease string `json:"suggestedIncrease"`
	}
	if err := json.Unmarshal([]byte(atRisk.Data), &payload); err != nil {
		t.Fatalf("data payload: %v", err)
	}
	if payload.DaysLeft != 60 {
		t.Errorf("daysLeft = %d, want 60", payload.DaysLeft)
	}
	// 11,000,000 remaining over 2 months
	if payload.SuggestedIncrease != "5500000" {
		t.Errorf("suggestedIncrease = %s, want 5500000", payload.SuggestedIncrease)
	}

	if len(store.created) != len(insights) {
		t.Errorf("insights returned but not persisted")
	}
}

func TestGenerateNoAtRiskWhenDeadlineFar(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	// ~4% progress but nearly a year of runway: below-25% alone must not alert
	goal := &model.Goal{
		BaseModel:      model.BaseModel{ID: 1},
		WorkspaceID:    1,
		Name:           "Bali Trip",
		Type:           model.GoalVacation,
		Status:         model.GoalActive,
		TargetAmount:   dec("12000000"),
		CurrentAmount:  dec("500000"),
		TargetDate:     now.AddDate(0, 11, 0),
		IsAutoTracking: true,
	}
	gen, contributions, _ := newInsightFixture(goal)
	contributions.entries = []model.GoalContribution{
		{GoalID: 1, Amount: dec("3000000"), Date: now.AddDate(0, -1, 0)},
	}

	insights, err := gen.Generate(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, in := range insights {
		if in.Title == "Goal At Risk" {
			t.Fatalf("at-risk insight emitted with %d days left", 330)
		}
	}
}

func TestGeneratePaceInsight(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	goal := &model.Goal{
		BaseModel:      model.BaseModel{ID: 1},
		WorkspaceID:    1,
		Name:           "Nest Egg",
		Type:           model.GoalSavings,
		Status:         model.GoalActive,
		TargetAmount:   dec("12000"),
		CurrentAmount:  dec("6000"),
		TargetDate:     now.AddDate(0, 0, 180), // needs 1000/month
		IsAutoTracking: true,
	}
	gen, contributions, _ := newInsightFixture(goal)
	// 1500 over three months = 500/month, under the 80% threshold of 1000
	contributions.entries = []model.GoalContribution{
		{GoalID: 1, Amount: dec("1500"), Date: now.AddDate(0, -2, 0)},
	}

	insights, err := gen.Generate(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	pace := findInsight(t, insights, "Increase Contribution Pace")
	if pace.Type != model.InsightRecommendation {
		t.Errorf("pace insight type = %s", pace.Type)
	}

	var payload struct {
		ActualMonthly string `json:"actualMonthly"`
		Shortfall     string `json:"shortfall"`
	}
	if err := json.Unmarshal([]byte(pace.Data), &payload); err != nil {
		t.Fatalf("data payload: %v", err)
	}
	if payload.ActualMonthly != "500" {
		t.Errorf("actualMonthly = %s, want 500", payload.ActualMonthly)
	}
	if payload.Shortfall != "500" {
		t.Errorf("shortfall = %s, want 500", payload.Shortfall)
	}
}

func TestGenerateNoPaceInsightWhenOnTrack(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	goal := &model.Goal{
		BaseModel:      model.BaseModel{ID: 1},
		WorkspaceID:    1,
		Name:           "Nest Egg",
		Type:           model.GoalSavings,
		Status:         model.GoalActive,
		TargetAmount:   dec("12000"),
		CurrentAmount:  dec("6000"),
		TargetDate:     now.AddDate(0, 0, 180),
		IsAutoTracking: true,
	}
	gen, contributions, _ := newInsightFixture(goal)
	// 900/month against a required 1000: within the 80% tolerance
	contributions.entries = []model.GoalContribution{
		{GoalID: 1, Amount: dec("2700"), Date: now.AddDate(0, -2, 0)},
	}

	insights, err := gen.Generate(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if insights != nil {
		t.Fatalf("expected no insights for an on-track auto-tracked goal, got %d", len(insights))
	}
}

func TestGenerateAutoTrackingRecommendation(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	goal := &model.Goal{
		BaseModel:     model.BaseModel{ID: 1},
		WorkspaceID:   1,
		Name:          "Nest Egg",
		Type:          model.GoalSavings,
		Status:        model.GoalActive,
		TargetAmount:  dec("1000"),
		CurrentAmount: dec("1000"), // complete, so no pace or at-risk rules
		TargetDate:    now.AddDate(1, 0, 0),
	}
	gen, _, _ := newInsightFixture(goal)

	insights, err := gen.Generate(1, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("expected only the auto-tracking recommendation, got %d", len(insights))
	}
	if insights[0].Title != "Enable Auto-Tracking" || insights[0].Type != model.InsightRecommendation {
		t.Errorf("unexpected insight %+v", insights[0])
	}
}

func TestGenerateMissingGoalOrForeignWorkspace(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		TargetAmount: dec("1000"),
	}
	gen, _, store := newInsightFixture(goal)

	if insights, err := gen.Generate(99, 1); err != nil || insights != nil {
		t.Errorf("missing goal: insights=%v err=%v", insights, err)
	}
	if insights, err := gen.Generate(1, 2); err != nil || insights != nil {
		t.Errorf("foreign workspace: insights=%v err=%v", insights, err)
	}
	if len(store.created) != 0 {
		t.Errorf("nothing should be persisted")
	}
}
