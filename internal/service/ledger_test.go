package service

import (
	"testing"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

func newLedgerFixture(goals ...*model.Goal) (*ContributionLedger, *fakeGoalStore, *fakeContributionStore, *fakeMilestoneStore, *fakeNotifier) {
	goalStore := newFakeGoalStore(goals...)
	contributions := newFakeContributionStore()
	milestones := &fakeMilestoneStore{}
	notifier := &fakeNotifier{}
	debts := &fakeDebtReader{debts: make(map[uint]*model.Debt)}
	tracker := NewMilestoneTracker(milestones, notifier)
	ledger := NewContributionLedger(goalStore, contributions, debts, tracker, notifier)
	return ledger, goalStore, contributions, milestones, notifier
}

func TestRecordIsIdempotent(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Name:         "Bali Trip",
		Type:         model.GoalVacation,
		Status:       model.GoalActive,
		TargetAmount: dec("12000000"),
	}
	ledger, _, contributions, _, _ := newLedgerFixture(goal)

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 10},
		WorkspaceID: 1,
		Type:        model.TransactionSaving,
		Amount:      dec("500000"),
		Description: "Monthly vacation saving",
		Date:        time.Now(),
	}

	if err := ledger.Record(goal, tx, model.ContributionAutoCategorized, "Keywords: vacation"); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := ledger.Record(goal, tx, model.ContributionAutoCategorized, "Keywords: vacation"); err != nil {
		t.Fatalf("second record: %v", err)
	}

	if len(contributions.entries) != 1 {
		t.Fatalf("expected 1 ledger entry after duplicate record, got %d", len(contributions.entries))
	}
	entry := contributions.entries[0]
	if entry.Source != "Monthly vacation saving (Keywords: vacation)" {
		t.Errorf("source = %q", entry.Source)
	}
	if entry.TransactionID == nil || *entry.TransactionID != 10 {
		t.Errorf("transaction id not preserved on the entry")
	}
}

func TestRecordTreatsUniqueViolationAsSkip(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Type:         model.GoalSavings,
		Status:       model.GoalActive,
		TargetAmount: dec("1000"),
	}
	ledger, _, contributions, _, _ := newLedgerFixture(goal)

	tx := &model.Transaction{
		BaseModel: model.BaseModel{ID: 11},
		Type:      model.TransactionSaving,
		Amount:    dec("100"),
	}

	// the prior-entry query misses but the insert hits the unique index,
	// mimicking a concurrent insert between the two
	contributions.createErr = gorm.ErrDuplicatedKey

	if err := ledger.Record(goal, tx, model.ContributionTransaction, "Account: 1"); err != nil {
		t.Fatalf("unique violation should be swallowed, got %v", err)
	}
	if len(contributions.entries) != 0 {
		t.Fatalf("expected no entry, got %d", len(contributions.entries))
	}
}

func TestRecomputeFromLedger(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Name:         "Bali Trip",
		Type:         model.GoalVacation,
		Status:       model.GoalActive,
		TargetAmount: dec("12000000"),
	}
	ledger, goals, contributions, _, _ := newLedgerFixture(goal)

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 10},
		WorkspaceID: 1,
		Type:        model.TransactionSaving,
		Amount:      dec("500000"),
		Description: "Monthly vacation saving",
	}
	contributions.txTypes[10] = model.TransactionSaving

	if err := ledger.Record(goal, tx, model.ContributionAutoCategorized, "Keywords: vacation"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := ledger.Recompute(1); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	updated := goals.goals[1]
	if !updated.CurrentAmount.Equal(dec("500000")) {
		t.Errorf("current amount = %s, want 500000", updated.CurrentAmount)
	}
	if p := updated.Progress(); p < 4.1 || p > 4.2 {
		t.Errorf("progress = %.2f, want ~4.17", p)
	}
	if updated.Status != model.GoalActive {
		t.Errorf("status = %s, goal should stay active", updated.Status)
	}
	if updated.LastProgressUpdate == nil {
		t.Errorf("last progress update not stamped")
	}
}

func TestRecomputeExcludesExpenseContributionsForVacation(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Type:         model.GoalVacation,
		Status:       model.GoalActive,
		TargetAmount: dec("1000"),
	}
	ledger, goals, contributions, _, _ := newLedgerFixture(goal)

	savingID, expenseID := uint(20), uint(21)
	contributions.txTypes[savingID] = model.TransactionSaving
	contributions.txTypes[expenseID] = model.TransactionExpense
	contributions.entries = []model.GoalContribution{
		{GoalID: 1, TransactionID: &savingID, Amount: dec("300")},
		{GoalID: 1, TransactionID: &expenseID, Amount: dec("400")},
	}

	if err := ledger.Recompute(1); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !goals.goals[1].CurrentAmount.Equal(dec("300")) {
		t.Errorf("current amount = %s, want 300 (expense excluded)", goals.goals[1].CurrentAmount)
	}
}

func TestRecomputeDebtLinkedGoalUsesPaidAmount(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Type:         model.GoalDebtPayment,
		Status:       model.GoalActive,
		TargetAmount: dec("10000000"),
		LinkedDebtID: uintPtr(3),
	}
	ledger, goals, contributions, _, _ := newLedgerFixture(goal)
	ledger.Debts = &fakeDebtReader{debts: map[uint]*model.Debt{
		3: {
			BaseModel:       model.BaseModel{ID: 3},
			TotalAmount:     dec("10000000"),
			RemainingAmount: dec("4000000"),
		},
	}}

	// ledger contents must be ignored for debt-linked goals
	txID := uint(30)
	contributions.entries = []model.GoalContribution{
		{GoalID: 1, TransactionID: &txID, Amount: dec("999999999")},
	}

	if err := ledger.Recompute(1); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !goals.goals[1].CurrentAmount.Equal(dec("6000000")) {
		t.Errorf("current amount = %s, want 6000000 from debt paid amount", goals.goals[1].CurrentAmount)
	}
}

func TestRecomputeClampsNegativeToZero(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Type:         model.GoalSavings,
		Status:       model.GoalActive,
		TargetAmount: dec("1000"),
	}
	ledger, goals, contributions, _, _ := newLedgerFixture(goal)

	contributions.entries = []model.GoalContribution{
		{GoalID: 1, Amount: dec("100")},
		{GoalID: 1, Amount: dec("-250")},
	}

	if err := ledger.Recompute(1); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !goals.goals[1].CurrentAmount.IsZero() {
		t.Errorf("current amount = %s, want 0", goals.goals[1].CurrentAmount)
	}
}

func TestRecomputeCompletesGoalOnce(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Name:         "Nest Egg",
		Type:         model.GoalSavings,
		Status:       model.GoalActive,
		TargetAmount: dec("1000"),
	}
	ledger, goals, contributions, _, notifier := newLedgerFixture(goal)

	contributions.entries = []model.GoalContribution{{GoalID: 1, Amount: dec("1000")}}

	if err := ledger.Recompute(1); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if goals.goals[1].Status != model.GoalCompleted {
		t.Fatalf("status = %s, want completed", goals.goals[1].Status)
	}
	if goals.goals[1].CompletedAt == nil {
		t.Errorf("completedAt not stamped")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].kind != "goal_completed" {
		t.Fatalf("expected one goal_completed notification, got %v", notifier.sent)
	}

	// a second recompute must not revert or re-notify
	completedAt := *goals.goals[1].CompletedAt
	if err := ledger.Recompute(1); err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if goals.goals[1].Status != model.GoalCompleted {
		t.Errorf("completion reverted")
	}
	if !goals.goals[1].CompletedAt.Equal(completedAt) {
		t.Errorf("completedAt re-stamped")
	}
	if len(notifier.sent) != 1 {
		t.Errorf("completion notified twice")
	}
}

func TestRecomputeMissingGoalIsNoOp(t *testing.T) {
	ledger, _, _, _, _ := newLedgerFixture()
	if err := ledger.Recompute(99); err != nil {
		t.Fatalf("missing goal should be a no-op, got %v", err)
	}
}

func TestRecordManual(t *testing.T) {
	goal := &model.Goal{
		BaseModel:    model.BaseModel{ID: 1},
		WorkspaceID:  1,
		Type:         model.GoalSavings,
		Status:       model.GoalActive,
		TargetAmount: dec("1000"),
	}
	ledger, _, contributions, _, _ := newLedgerFixture(goal)

	if err := ledger.RecordManual(goal, dec("50"), "birthday money"); err != nil {
		t.Fatalf("record manual: %v", err)
	}
	if err := ledger.RecordManual(goal, dec("25"), "spare change"); err != nil {
		t.Fatalf("second manual: %v", err)
	}

	if len(contributions.entries) != 2 {
		t.Fatalf("manual entries are not deduplicated, want 2 got %d", len(contributions.entries))
	}
	if contributions.entries[0].Type != model.ContributionManual {
		t.Errorf("type = %s, want manual", contributions.entries[0].Type)
	}
	if contributions.entries[0].TransactionID != nil {
		t.Errorf("manual entry must not carry a transaction id")
	}
}
