package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var three = decimal.NewFromInt(3)

// SpendingSnapshot is the trailing three-month aggregate view the suggestion
// and insight heuristics run on. All monthly figures are simple averages over
// the window.
type SpendingSnapshot struct {
	MonthlyExpenses    decimal.Decimal `json:"monthlyExpenses"`
	MonthlyIncome      decimal.Decimal `json:"monthlyIncome"`
	EntertainmentSpend decimal.Decimal `json:"entertainmentSpend"`
	DisposableIncome   decimal.Decimal `json:"disposableIncome"`
	// SavingsRate is 0 when there is no income in the window (undefined,
	// skip rather than divide by zero).
	SavingsRate float64 `json:"savingsRate"`
}

// SpendingAnalyzer aggregates workspace spending and income, with a short
// redis cache in front of the three aggregate queries.
type SpendingAnalyzer struct {
	TransactionRepo *repository.TransactionRepository
	Redis           *redis.Client
	CacheTTL        time.Duration
}

func NewSpendingAnalyzer(transactionRepo *repository.TransactionRepository, rdb *redis.Client, cacheTTL time.Duration) *SpendingAnalyzer {
	return &SpendingAnalyzer{
		TransactionRepo: transactionRepo,
		Redis:           rdb,
		CacheTTL:        cacheTTL,
	}
}

func analyticsCacheKey(workspaceID uint) string {
	return fmt.Sprintf("goals:analytics:%d", workspaceID)
}

func (s *SpendingAnalyzer) Snapshot(ctx context.Context, workspaceID uint) (*SpendingSnapshot, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, analyticsCacheKey(workspaceID)).Result()
		if err == nil {
			var snapshot SpendingSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	since := timeNow().AddDate(0, -3, 0)

	totalExpenses, err := s.TransactionRepo.SumAmountSince(workspaceID, []model.TransactionType{model.TransactionExpense}, since)
	if err != nil {
		return nil, err
	}

	totalIncome, err := s.TransactionRepo.SumAmountSince(workspaceID, []model.TransactionType{model.TransactionIncome}, since)
	if err != nil {
		return nil, err
	}

	totalEntertainment, err := s.TransactionRepo.CategorySpendSince(workspaceID, "entertainment", since)
	if err != nil {
		return nil, err
	}

	snapshot := &SpendingSnapshot{
		MonthlyExpenses:    totalExpenses.Div(three).Round(2),
		MonthlyIncome:      totalIncome.Div(three).Round(2),
		EntertainmentSpend: totalEntertainment.Div(three).Round(2),
	}
	snapshot.DisposableIncome = snapshot.MonthlyIncome.Sub(snapshot.MonthlyExpenses)
	if snapshot.MonthlyIncome.IsPositive() {
		rate, _ := snapshot.DisposableIncome.Div(snapshot.MonthlyIncome).Float64()
		snapshot.SavingsRate = rate
	}

	if s.Redis != nil {
		payload, err := json.Marshal(snapshot)
		if err == nil {
			if err := s.Redis.Set(ctx, analyticsCacheKey(workspaceID), payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("analytics cache write failed", zap.Error(err), zap.Uint("workspaceId", workspaceID))
			}
		}
	}

	return snapshot, nil
}

// Invalidate drops the cached snapshot after a transaction write.
func (s *SpendingAnalyzer) Invalidate(ctx context.Context, workspaceID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, analyticsCacheKey(workspaceID)).Err(); err != nil {
		logger.Log.Warn("analytics cache invalidation failed", zap.Error(err), zap.Uint("workspaceId", workspaceID))
	}
}
