package service

import (
	"context"
	"testing"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
)

func snapshot() *SpendingSnapshot {
	return &SpendingSnapshot{
		MonthlyExpenses:    dec("3000000"),
		MonthlyIncome:      dec("5000000"),
		EntertainmentSpend: dec("350"),
		DisposableIncome:   dec("2000000"),
		SavingsRate:        0.4,
	}
}

func newSuggestionFixture(goals []model.Goal, debts []model.Debt, snap *SpendingSnapshot) *SuggestionGenerator {
	return NewSuggestionGenerator(
		&fakeGoalLister{goals: goals},
		&fakeDebtLister{debts: debts},
		&fakeSpending{snapshot: snap},
		5,
	)
}

func TestGenerateSuggestionsFullSet(t *testing.T) {
	debts := []model.Debt{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Credit Card", RemainingAmount: dec("5000000"), InterestRate: dec("22")},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Car Loan", RemainingAmount: dec("8000000"), InterestRate: dec("7.5")},
	}
	gen := newSuggestionFixture(nil, debts, snapshot())

	suggestions, err := gen.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(suggestions))
	}

	emergency := suggestions[0]
	if emergency.Type != model.GoalEmergencyFund {
		t.Fatalf("first suggestion = %s, emergency fund must lead", emergency.Type)
	}
	if !emergency.RecommendedAmount.Equal(dec("18000000")) {
		t.Errorf("emergency target = %s, want 6x expenses", emergency.RecommendedAmount)
	}
	if emergency.Priority != model.PriorityCritical || emergency.Confidence != 0.95 {
		t.Errorf("emergency priority/confidence = %s/%v", emergency.Priority, emergency.Confidence)
	}

	card := suggestions[1]
	if card.Title != "Pay Off Credit Card" || card.Priority != model.PriorityHigh {
		t.Errorf("22%% debt must be high priority, got %q/%s", card.Title, card.Priority)
	}
	// 5,000,000 at 20% of 2,000,000 disposable = 400,000/month -> 13 months
	if card.Timeline != "2 years" {
		t.Errorf("card timeline = %q", card.Timeline)
	}

	loan := suggestions[2]
	if loan.Priority != model.PriorityMedium {
		t.Errorf("7.5%% debt priority = %s, want medium", loan.Priority)
	}

	vacation := suggestions[3]
	if vacation.Type != model.GoalVacation || !vacation.RecommendedAmount.Equal(dec("4200")) {
		t.Errorf("vacation = %s %s, want 12x entertainment spend", vacation.Type, vacation.RecommendedAmount)
	}

	house := suggestions[4]
	if house.Type != model.GoalHouse {
		t.Fatalf("last suggestion = %s, want house", house.Type)
	}
	// 3x annual income = 3 * 60,000,000
	if !house.RecommendedAmount.Equal(dec("180000000")) {
		t.Errorf("house target = %s", house.RecommendedAmount)
	}
	if house.Timeline != "5-7 years" {
		t.Errorf("house timeline = %q", house.Timeline)
	}
}

func TestGenerateSuggestionsTruncatesAtMax(t *testing.T) {
	debts := []model.Debt{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Card A", RemainingAmount: dec("100"), InterestRate: dec("20")},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Card B", RemainingAmount: dec("200"), InterestRate: dec("20")},
		{BaseModel: model.BaseModel{ID: 3}, Name: "Card C", RemainingAmount: dec("300"), InterestRate: dec("20")},
		{BaseModel: model.BaseModel{ID: 4}, Name: "Card D", RemainingAmount: dec("400"), InterestRate: dec("20")},
	}
	gen := newSuggestionFixture(nil, debts, snapshot())

	suggestions, err := gen.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(suggestions) != 5 {
		t.Fatalf("expected truncation to 5, got %d", len(suggestions))
	}
	// earlier heuristics win the budget: emergency plus the four debts
	if suggestions[4].Type != model.GoalDebtPayment {
		t.Errorf("last kept suggestion = %s", suggestions[4].Type)
	}
}

func TestGenerateSuggestionsSkipsCoveredGround(t *testing.T) {
	linked := uint(1)
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 10}, Type: model.GoalEmergencyFund, Name: "Safety Net"},
		{BaseModel: model.BaseModel{ID: 11}, Type: model.GoalDebtPayment, Name: "Kill the card", LinkedDebtID: &linked},
		{BaseModel: model.BaseModel{ID: 12}, Type: model.GoalDebtPayment, Name: "Pay off car loan"},
		{BaseModel: model.BaseModel{ID: 13}, Type: model.GoalSavings, Name: "Vacation 2027"},
		{BaseModel: model.BaseModel{ID: 14}, Type: model.GoalSavings, Description: "saving for a house"},
	}
	debts := []model.Debt{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Credit Card", RemainingAmount: dec("5000000"), InterestRate: dec("22")},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Car Loan", RemainingAmount: dec("8000000"), InterestRate: dec("7.5")},
	}
	gen := newSuggestionFixture(goals, debts, snapshot())

	suggestions, err := gen.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("everything is covered by existing goals, got %d suggestions: %+v", len(suggestions), suggestions)
	}
}

func TestGenerateSuggestionsQuietSpender(t *testing.T) {
	snap := &SpendingSnapshot{
		MonthlyExpenses:    dec("1000"),
		MonthlyIncome:      dec("1100"),
		EntertainmentSpend: dec("150"), // under the 200 floor
		DisposableIncome:   dec("100"),
		SavingsRate:        0.09, // under the 15% floor
	}
	gen := newSuggestionFixture(nil, nil, snap)

	suggestions, err := gen.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Type != model.GoalEmergencyFund {
		t.Fatalf("only the emergency fund should qualify, got %+v", suggestions)
	}
}
