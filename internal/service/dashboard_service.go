package service

import (
	"context"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the aggregate view the workspace landing page renders.
type DashboardSummary struct {
	TotalBalance    decimal.Decimal  `json:"totalBalance"`
	MonthlyIncome   decimal.Decimal  `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal  `json:"monthlyExpenses"`
	SavingsRate     float64          `json:"savingsRate"`
	ActiveGoals     int              `json:"activeGoals"`
	AverageProgress float64          `json:"averageProgress"`
	Goals           []GoalProgress   `json:"goals"`
	TotalDebt       decimal.Decimal  `json:"totalDebt"`
	Health          *HealthReport    `json:"health"`
	Suggestions     []GoalSuggestion `json:"suggestions"`
}

// GoalProgress is one row of the dashboard's goal list.
type GoalProgress struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	Progress      float64         `json:"progress"`
}

type DashboardService struct {
	AccountRepo *repository.AccountRepository
	GoalRepo    *repository.GoalRepository
	DebtRepo    *repository.DebtRepository
	Analyzer    *SpendingAnalyzer
	Health      *FinancialHealthService
	Suggest     *SuggestionGenerator
}

func NewDashboardService(
	accountRepo *repository.AccountRepository,
	goalRepo *repository.GoalRepository,
	debtRepo *repository.DebtRepository,
	analyzer *SpendingAnalyzer,
	health *FinancialHealthService,
	suggest *SuggestionGenerator,
) *DashboardService {
	return &DashboardService{
		AccountRepo: accountRepo,
		GoalRepo:    goalRepo,
		DebtRepo:    debtRepo,
		Analyzer:    analyzer,
		Health:      health,
		Suggest:     suggest,
	}
}

func (s *DashboardService) Summary(ctx context.Context, workspaceID uint) (*DashboardSummary, error) {
	accounts, err := s.AccountRepo.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}
	balance := decimal.Zero
	for i := range accounts {
		balance = balance.Add(accounts[i].Balance)
	}

	snapshot, err := s.Analyzer.Snapshot(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	goals, err := s.GoalRepo.FindActiveByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}
	var progressSum float64
	goalRows := make([]GoalProgress, 0, len(goals))
	for i := range goals {
		p := goals[i].Progress()
		progressSum += p
		goalRows = append(goalRows, GoalProgress{
			ID:            goals[i].ID,
			Name:          goals[i].Name,
			Type:          string(goals[i].Type),
			CurrentAmount: goals[i].CurrentAmount,
			TargetAmount:  goals[i].TargetAmount,
			Progress:      p,
		})
	}
	avgProgress := 0.0
	if len(goals) > 0 {
		avgProgress = progressSum / float64(len(goals))
	}

	debts, err := s.DebtRepo.FindActiveByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}
	totalDebt := decimal.Zero
	for i := range debts {
		totalDebt = totalDebt.Add(debts[i].RemainingAmount)
	}

	health, err := s.Health.Score(workspaceID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.Suggest.Generate(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []GoalSuggestion{}
	}

	return &DashboardSummary{
		TotalBalance:    balance,
		MonthlyIncome:   snapshot.MonthlyIncome,
		MonthlyExpenses: snapshot.MonthlyExpenses,
		SavingsRate:     snapshot.SavingsRate,
		ActiveGoals:     len(goals),
		AverageProgress: avgProgress,
		Goals:           goalRows,
		TotalDebt:       totalDebt,
		Health:          health,
		Suggestions:     suggestions,
	}, nil
}
