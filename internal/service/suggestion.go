package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
)

// GoalSuggestion is a candidate new goal. Transient, never persisted.
type GoalSuggestion struct {
	Type              model.GoalType     `json:"type"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	RecommendedAmount decimal.Decimal    `json:"recommendedAmount"`
	Priority          model.GoalPriority `json:"priority"`
	Reasoning         string             `json:"reasoning"`
	Confidence        float64            `json:"confidence"`
	Timeline          string             `json:"timeline"`
}

// SuggestionGenerator proposes new goals from trailing spending aggregates
// and the workspace's existing goal and debt portfolio.
type SuggestionGenerator struct {
	Goals          GoalLister
	Debts          DebtLister
	Spending       SpendingStats
	MaxSuggestions int
}

func NewSuggestionGenerator(goals GoalLister, debts DebtLister, spending SpendingStats, maxSuggestions int) *SuggestionGenerator {
	if maxSuggestions <= 0 {
		maxSuggestions = 5
	}
	return &SuggestionGenerator{
		Goals:          goals,
		Debts:          debts,
		Spending:       spending,
		MaxSuggestions: maxSuggestions,
	}
}

var (
	twelve             = decimal.NewFromInt(12)
	six                = decimal.NewFromInt(6)
	entertainmentFloor = decimal.NewFromInt(200)
	highInterestRate   = decimal.NewFromFloat(15)
	savingsRateFloor   = 0.15
)

// Generate returns up to MaxSuggestions candidates in heuristic order:
// emergency fund, debt payoff, vacation, house.
func (s *SuggestionGenerator) Generate(ctx context.Context, workspaceID uint) ([]GoalSuggestion, error) {
	snapshot, err := s.Spending.Snapshot(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	goals, err := s.Goals.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}

	var suggestions []GoalSuggestion

	if !hasGoalLike(goals, model.GoalEmergencyFund, "emergency fund") && snapshot.MonthlyExpenses.IsPositive() {
		target := snapshot.MonthlyExpenses.Mul(six).Round(2)
		suggestions = append(suggestions, GoalSuggestion{
			Type:              model.GoalEmergencyFund,
			Title:             "Build an Emergency Fund",
			Description:       "A safety net covering six months of expenses",
			RecommendedAmount: target,
			Priority:          model.PriorityCritical,
			Reasoning: fmt.Sprintf("Your average monthly expenses are %s. Six months of coverage protects you from income shocks.",
				snapshot.MonthlyExpenses.StringFixed(2)),
			Confidence: 0.95,
			Timeline:   "12-18 months",
		})
	}

	debts, err := s.Debts.FindActiveByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}
	for i := range debts {
		debt := &debts[i]
		if hasDebtGoal(goals, debt) {
			continue
		}
		priority := model.PriorityMedium
		if debt.InterestRate.GreaterThan(highInterestRate) {
			priority = model.PriorityHigh
		}
		suggestions = append(suggestions, GoalSuggestion{
			Type:              model.GoalDebtPayment,
			Title:             fmt.Sprintf("Pay Off %s", debt.Name),
			Description:       fmt.Sprintf("Eliminate the remaining %s balance", debt.RemainingAmount.StringFixed(2)),
			RecommendedAmount: debt.RemainingAmount,
			Priority:          priority,
			Reasoning: fmt.Sprintf("%s carries a %s%% interest rate. Paying it down frees up monthly cash flow.",
				debt.Name, debt.InterestRate.StringFixed(1)),
			Confidence: 0.9,
			Timeline:   EstimatePayoffTimeline(debt.RemainingAmount, snapshot.DisposableIncome),
		})
	}

	if snapshot.EntertainmentSpend.GreaterThan(entertainmentFloor) && !hasGoalLike(goals, model.GoalVacation, "vacation") {
		suggestions = append(suggestions, GoalSuggestion{
			Type:              model.GoalVacation,
			Title:             "Save for a Vacation",
			Description:       "Turn part of your entertainment budget into a trip fund",
			RecommendedAmount: snapshot.EntertainmentSpend.Mul(twelve).Round(2),
			Priority:          model.PriorityMedium,
			Reasoning: fmt.Sprintf("You spend %s per month on entertainment. Redirecting some of it funds a real getaway.",
				snapshot.EntertainmentSpend.StringFixed(2)),
			Confidence: 0.7,
			Timeline:   "12 months",
		})
	}

	if snapshot.SavingsRate > savingsRateFloor && !hasGoalLike(goals, model.GoalHouse, "house") {
		annualIncome := snapshot.MonthlyIncome.Mul(twelve)
		suggestions = append(suggestions, GoalSuggestion{
			Type:              model.GoalHouse,
			Title:             "House Down Payment",
			Description:       "Save toward a down payment on a home",
			RecommendedAmount: annualIncome.Mul(decimal.NewFromInt(3)).Round(2),
			Priority:          model.PriorityHigh,
			Reasoning: fmt.Sprintf("Your savings rate of %.0f%% leaves room for a long-term housing goal.",
				snapshot.SavingsRate*100),
			Confidence: 0.8,
			Timeline:   "5-7 years",
		})
	}

	if len(suggestions) > s.MaxSuggestions {
		suggestions = suggestions[:s.MaxSuggestions]
	}
	return suggestions, nil
}

// hasGoalLike reports whether any goal matches the type or mentions the
// phrase in its name or description.
func hasGoalLike(goals []model.Goal, goalType model.GoalType, phrase string) bool {
	for i := range goals {
		if goals[i].Type == goalType {
			return true
		}
		if strings.Contains(strings.ToLower(goals[i].Name), phrase) ||
			strings.Contains(strings.ToLower(goals[i].Description), phrase) {
			return true
		}
	}
	return false
}

// hasDebtGoal reports whether a goal is already linked to the debt or names it.
func hasDebtGoal(goals []model.Goal, debt *model.Debt) bool {
	name := strings.ToLower(debt.Name)
	for i := range goals {
		if goals[i].LinkedDebtID != nil && *goals[i].LinkedDebtID == debt.ID {
			return true
		}
		if goals[i].Type == model.GoalDebtPayment && name != "" &&
			strings.Contains(strings.ToLower(goals[i].Name), name) {
			return true
		}
	}
	return false
}
