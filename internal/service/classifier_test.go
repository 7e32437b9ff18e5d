package service

import (
	"testing"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestClassifyKeywordMatch(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{
			BaseModel:    model.BaseModel{ID: 1},
			WorkspaceID:  1,
			Name:         "Bali Trip",
			Type:         model.GoalVacation,
			TargetAmount: dec("12000000"),
		},
	}

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 10},
		WorkspaceID: 1,
		AccountID:   5,
		Type:        model.TransactionSaving,
		Amount:      dec("500000"),
		Description: "Monthly vacation saving",
	}

	matches := classifier.Classify(tx, goals)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ContributionType != model.ContributionAutoCategorized {
		t.Errorf("contribution type = %s, want auto_categorized", matches[0].ContributionType)
	}
	if matches[0].Reason != "Keywords: vacation" {
		t.Errorf("reason = %q, want %q", matches[0].Reason, "Keywords: vacation")
	}
}

func TestClassifyLinkedAccountWinsOverKeywords(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{
			BaseModel:       model.BaseModel{ID: 1},
			Name:            "Emergency Fund",
			Type:            model.GoalEmergencyFund,
			TargetAmount:    dec("18000000"),
			LinkedAccountID: uintPtr(7),
		},
	}

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 11},
		AccountID:   7,
		Type:        model.TransactionTransfer,
		Amount:      dec("1000000"),
		Description: "emergency transfer",
	}

	matches := classifier.Classify(tx, goals)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Reason != "Account: 7" {
		t.Errorf("reason = %q, want linked-account provenance", matches[0].Reason)
	}
	if matches[0].ContributionType != model.ContributionTransaction {
		t.Errorf("contribution type = %s, want transaction", matches[0].ContributionType)
	}
}

func TestClassifyLinkedDebt(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{
			BaseModel:    model.BaseModel{ID: 2},
			Name:         "Car Loan Payoff",
			Type:         model.GoalDebtPayment,
			TargetAmount: dec("10000000"),
			LinkedDebtID: uintPtr(3),
		},
	}

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 12},
		AccountID:   1,
		DebtID:      uintPtr(3),
		Type:        model.TransactionRepayment,
		Amount:      dec("500000"),
		Description: "monthly car payment",
	}

	matches := classifier.Classify(tx, goals)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ContributionType != model.ContributionDebtPayment {
		t.Errorf("contribution type = %s, want debt_payment", matches[0].ContributionType)
	}
	if matches[0].Reason != "Debt: 3" {
		t.Errorf("reason = %q, want %q", matches[0].Reason, "Debt: 3")
	}
}

func TestClassifyTypeRelevanceGate(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{
			BaseModel:    model.BaseModel{ID: 1},
			Name:         "General Savings",
			Type:         model.GoalSavings,
			TargetAmount: dec("5000000"),
		},
	}

	// expense with a savings keyword must not count toward a savings goal
	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 13},
		AccountID:   1,
		Type:        model.TransactionExpense,
		Amount:      dec("100000"),
		Description: "savings account fee",
	}

	if matches := classifier.Classify(tx, goals); len(matches) != 0 {
		t.Fatalf("expected no matches for an expense against a savings goal, got %d", len(matches))
	}
}

func TestClassifyRejectsNonPositiveAmounts(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 1}, Type: model.GoalSavings, TargetAmount: dec("100")},
	}

	for _, amount := range []decimal.Decimal{decimal.Zero, dec("-50")} {
		tx := &model.Transaction{
			BaseModel:   model.BaseModel{ID: 14},
			Type:        model.TransactionSaving,
			Amount:      amount,
			Description: "savings deposit",
		}
		if matches := classifier.Classify(tx, goals); matches != nil {
			t.Errorf("amount %s: expected nil matches, got %v", amount, matches)
		}
	}

	if matches := classifier.Classify(nil, goals); matches != nil {
		t.Errorf("nil transaction: expected nil matches")
	}
}

func TestClassifyLinkedAccountGateStillApplies(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{
			BaseModel:       model.BaseModel{ID: 1},
			Name:            "Retirement",
			Type:            model.GoalRetirement,
			TargetAmount:    dec("100000000"),
			LinkedAccountID: uintPtr(9),
		},
	}

	// an expense out of the linked account is not a contribution, and the
	// linked-account rule consumes the goal so keywords are not consulted
	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 15},
		AccountID:   9,
		Type:        model.TransactionExpense,
		Amount:      dec("250000"),
		Description: "pension consultation",
	}

	if matches := classifier.Classify(tx, goals); len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestClassifyMultipleGoals(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Holiday", Type: model.GoalVacation, TargetAmount: dec("1000")},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Nest Egg", Type: model.GoalSavings, TargetAmount: dec("1000")},
	}

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 16},
		AccountID:   1,
		Type:        model.TransactionSaving,
		Amount:      dec("100"),
		Description: "travel savings deposit",
	}

	matches := classifier.Classify(tx, goals)
	if len(matches) != 2 {
		t.Fatalf("expected the transaction to match both goals, got %d matches", len(matches))
	}
}

func TestClassifyTransferCountsTowardEmergencyFund(t *testing.T) {
	classifier := NewTransactionClassifier()
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Rainy Day", Type: model.GoalEmergencyFund, TargetAmount: dec("1000")},
	}

	tx := &model.Transaction{
		BaseModel:   model.BaseModel{ID: 17},
		AccountID:   1,
		Type:        model.TransactionTransfer,
		Amount:      dec("100"),
		Description: "transfer to emergency buffer",
	}

	matches := classifier.Classify(tx, goals)
	if len(matches) != 1 {
		t.Fatalf("transfers must count toward emergency funds, got %d matches", len(matches))
	}
	if matches[0].Reason != "Keywords: emergency" {
		t.Errorf("reason = %q", matches[0].Reason)
	}
}
