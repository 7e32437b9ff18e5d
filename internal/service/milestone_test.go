package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
)

var errNotifyDown = errors.New("notifier down")

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = prev })
}

func TestGenerateQuarterlyMilestones(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	store := &fakeMilestoneStore{}
	tracker := NewMilestoneTracker(store, &fakeNotifier{})

	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		Name:         "Bali Trip",
		Type:         model.GoalVacation,
		TargetAmount: dec("12000000"),
		TargetDate:   now.AddDate(1, 0, 0), // 365 days -> 5 quarters
	}

	milestones, err := tracker.Generate(goal)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(milestones) != 5 {
		t.Fatalf("expected 5 milestones for a one-year goal, got %d", len(milestones))
	}

	first, last := milestones[0], milestones[4]
	if !first.TargetAmount.Equal(dec("2400000")) {
		t.Errorf("first amount = %s, want 2400000", first.TargetAmount)
	}
	if !last.TargetAmount.Equal(goal.TargetAmount) {
		t.Errorf("last amount = %s, must equal the target", last.TargetAmount)
	}
	if first.Name != "20% of Bali Trip" {
		t.Errorf("first name = %q", first.Name)
	}
	if last.Name != "100% of Bali Trip" {
		t.Errorf("last name = %q", last.Name)
	}
	if !first.TargetDate.Equal(now.AddDate(0, 3, 0)) {
		t.Errorf("first date = %s, want one quarter out", first.TargetDate)
	}
	if first.Reward != "Browse destinations for your trip" {
		t.Errorf("first reward = %q", first.Reward)
	}
	// vacation has 4 reward texts; the 5th milestone reuses the last one
	if last.Reward != "Start planning the itinerary" {
		t.Errorf("last reward = %q", last.Reward)
	}
	if len(store.milestones) != 5 {
		t.Errorf("milestones not persisted")
	}
}

func TestGenerateCapsMilestoneCount(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	tracker := NewMilestoneTracker(&fakeMilestoneStore{}, &fakeNotifier{})
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		Name:         "House",
		Type:         model.GoalHouse,
		TargetAmount: dec("900000000"),
		TargetDate:   now.AddDate(10, 0, 0),
	}

	milestones, err := tracker.Generate(goal)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(milestones) != defaultMaxMilestones {
		t.Errorf("expected cap at %d, got %d", defaultMaxMilestones, len(milestones))
	}
}

func TestGeneratePastTargetDateYieldsOneMilestone(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	tracker := NewMilestoneTracker(&fakeMilestoneStore{}, &fakeNotifier{})
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		Name:         "Overdue",
		Type:         model.GoalSavings,
		TargetAmount: dec("1000"),
		TargetDate:   now.AddDate(0, 0, -30),
	}

	milestones, err := tracker.Generate(goal)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(milestones) != 1 {
		t.Fatalf("expected a single milestone, got %d", len(milestones))
	}
	if !milestones[0].TargetAmount.Equal(dec("1000")) {
		t.Errorf("amount = %s, want the full target", milestones[0].TargetAmount)
	}
	if milestones[0].Reward != defaultRewards[0] {
		t.Errorf("savings goals should use the default rewards, got %q", milestones[0].Reward)
	}
}

func TestUpdateProgressCompletesCrossedMilestones(t *testing.T) {
	store := &fakeMilestoneStore{milestones: []model.GoalMilestone{
		{BaseModel: model.BaseModel{ID: 1}, GoalID: 1, Name: "25% of Bali Trip", TargetAmount: dec("3000000"), Order: 1, Reward: "Buy a travel guide"},
		{BaseModel: model.BaseModel{ID: 2}, GoalID: 1, Name: "50% of Bali Trip", TargetAmount: dec("6000000"), Order: 2},
		{BaseModel: model.BaseModel{ID: 3}, GoalID: 1, Name: "75% of Bali Trip", TargetAmount: dec("9000000"), Order: 3},
	}}
	notifier := &fakeNotifier{}
	tracker := NewMilestoneTracker(store, notifier)

	if err := tracker.UpdateProgress(1, 7, dec("6500000")); err != nil {
		t.Fatalf("update progress: %v", err)
	}

	if !store.milestones[0].IsCompleted || !store.milestones[1].IsCompleted {
		t.Errorf("milestones below the current amount must complete")
	}
	if store.milestones[2].IsCompleted {
		t.Errorf("milestone above the current amount completed early")
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
	if notifier.sent[0].kind != "milestone_reached" || notifier.sent[0].workspaceID != 7 {
		t.Errorf("unexpected notification %+v", notifier.sent[0])
	}
	if notifier.sent[0].message != "You reached the milestone \"25% of Bali Trip\". Reward: Buy a travel guide" {
		t.Errorf("message = %q", notifier.sent[0].message)
	}
	if notifier.sent[1].message != "You reached the milestone \"50% of Bali Trip\"." {
		t.Errorf("rewardless message = %q", notifier.sent[1].message)
	}

	// completed milestones are never re-evaluated or re-notified
	if err := tracker.UpdateProgress(1, 7, dec("6500000")); err != nil {
		t.Fatalf("second update: %v", err)
	}
	if len(notifier.sent) != 2 {
		t.Errorf("completed milestones notified again")
	}
}

func TestUpdateProgressNotifierFailureIsNotFatal(t *testing.T) {
	store := &fakeMilestoneStore{milestones: []model.GoalMilestone{
		{BaseModel: model.BaseModel{ID: 1}, GoalID: 1, Name: "50% of Nest Egg", TargetAmount: dec("500"), Order: 1},
	}}
	notifier := &fakeNotifier{err: errNotifyDown}
	tracker := NewMilestoneTracker(store, notifier)

	if err := tracker.UpdateProgress(1, 1, dec("600")); err != nil {
		t.Fatalf("notifier failure must not propagate, got %v", err)
	}
	if !store.milestones[0].IsCompleted {
		t.Errorf("milestone must still complete when the notification fails")
	}
}
