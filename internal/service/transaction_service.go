package service

import (
	"context"
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TransactionService owns the transaction lifecycle: balance adjustment on
// the account, debt paydown on repayments, then the goal engine pass over the
// new transaction.
type TransactionService struct {
	TransactionRepo *repository.TransactionRepository
	AccountRepo     *repository.AccountRepository
	DebtRepo        *repository.DebtRepository
	Goals           *GoalService
	Analyzer        *SpendingAnalyzer
}

func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	accountRepo *repository.AccountRepository,
	debtRepo *repository.DebtRepository,
	goals *GoalService,
	analyzer *SpendingAnalyzer,
) *TransactionService {
	return &TransactionService{
		TransactionRepo: transactionRepo,
		AccountRepo:     accountRepo,
		DebtRepo:        debtRepo,
		Goals:           goals,
		Analyzer:        analyzer,
	}
}

// balanceDelta is the signed effect of a transaction on its account. Money
// coming in (income, new debt principal) is positive, everything leaving the
// account is negative.
func balanceDelta(tx *model.Transaction) decimal.Decimal {
	switch tx.Type {
	case model.TransactionIncome, model.TransactionDebt:
		return tx.Amount
	default:
		return tx.Amount.Neg()
	}
}

// Create persists the transaction, adjusts the account balance, applies debt
// repayments, and runs the goal engine over it. Engine failures do not fail
// the create.
func (s *TransactionService) Create(ctx context.Context, tx *model.Transaction) (*TrackResult, error) {
	if tx.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}
	if _, err := s.AccountRepo.FindByIDAndWorkspaceID(tx.AccountID, tx.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, err
	}

	if err := s.TransactionRepo.Create(tx); err != nil {
		return nil, err
	}
	if err := s.AccountRepo.AdjustBalance(tx.AccountID, balanceDelta(tx)); err != nil {
		return nil, err
	}
	if tx.Type == model.TransactionRepayment && tx.DebtID != nil {
		if err := s.DebtRepo.ApplyPayment(*tx.DebtID, tx.Amount); err != nil {
			return nil, err
		}
	}

	s.Analyzer.Invalidate(ctx, tx.WorkspaceID)

	tracked, err := s.Goals.ProcessTransactionForGoals(tx.ID, tx.WorkspaceID)
	if err != nil {
		logger.Log.Error("goal tracking failed for transaction",
			zap.Error(err),
			zap.Uint("transactionId", tx.ID),
			zap.Uint("workspaceId", tx.WorkspaceID))
		return &TrackResult{Goals: []string{}}, nil
	}
	return tracked, nil
}

func (s *TransactionService) Get(id, workspaceID uint) (*model.Transaction, error) {
	tx, err := s.TransactionRepo.FindByIDAndWorkspaceID(id, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) List(workspaceID uint, filter repository.TransactionFilter, page, limit int) ([]model.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.TransactionRepo.FindByWorkspaceID(workspaceID, filter, page, limit)
}

// Update reverses the old balance effect and applies the new one. The
// transaction type and debt link are immutable; delete and recreate instead.
func (s *TransactionService) Update(ctx context.Context, id, workspaceID uint, updated *model.Transaction) (*model.Transaction, error) {
	existing, err := s.Get(id, workspaceID)
	if err != nil {
		return nil, err
	}
	if updated.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}

	existingCopy := *existing
	existingCopy.Amount = updated.Amount
	if err := s.AccountRepo.AdjustBalance(existing.AccountID, balanceDelta(existing).Neg()); err != nil {
		return nil, err
	}
	if err := s.AccountRepo.AdjustBalance(existing.AccountID, balanceDelta(&existingCopy)); err != nil {
		return nil, err
	}

	existing.Amount = updated.Amount
	existing.Description = updated.Description
	existing.CategoryID = updated.CategoryID
	if !updated.Date.IsZero() {
		existing.Date = updated.Date
	}
	if err := s.TransactionRepo.Update(existing); err != nil {
		return nil, err
	}

	s.Analyzer.Invalidate(ctx, workspaceID)
	return existing, nil
}

func (s *TransactionService) Delete(ctx context.Context, id, workspaceID uint) error {
	existing, err := s.Get(id, workspaceID)
	if err != nil {
		return err
	}
	if err := s.AccountRepo.AdjustBalance(existing.AccountID, balanceDelta(existing).Neg()); err != nil {
		return err
	}
	if err := s.TransactionRepo.Delete(id); err != nil {
		return err
	}
	s.Analyzer.Invalidate(ctx, workspaceID)
	return nil
}

// AttachReceipt stores the uploaded receipt URL on the transaction.
func (s *TransactionService) AttachReceipt(id, workspaceID uint, url string) (*model.Transaction, error) {
	existing, err := s.Get(id, workspaceID)
	if err != nil {
		return nil, err
	}
	existing.ReceiptURL = url
	if err := s.TransactionRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
