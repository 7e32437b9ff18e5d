package service

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"gorm.io/gorm"
)

type BudgetService struct {
	BudgetRepo *repository.BudgetRepository
}

func NewBudgetService(budgetRepo *repository.BudgetRepository) *BudgetService {
	return &BudgetService{BudgetRepo: budgetRepo}
}

func (s *BudgetService) Create(budget *model.Budget) error {
	if budget.Period == "" {
		budget.Period = model.BudgetMonthly
	}
	return s.BudgetRepo.Create(budget)
}

func (s *BudgetService) List(workspaceID uint) ([]model.Budget, error) {
	return s.BudgetRepo.FindByWorkspaceID(workspaceID)
}

func (s *BudgetService) Update(id, workspaceID uint, updated *model.Budget) (*model.Budget, error) {
	budget, err := s.BudgetRepo.FindByIDAndWorkspaceID(id, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBudgetNotFound
		}
		return nil, err
	}
	budget.Amount = updated.Amount
	budget.Period = updated.Period
	budget.StartDate = updated.StartDate
	if err := s.BudgetRepo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) Delete(id, workspaceID uint) error {
	if _, err := s.BudgetRepo.FindByIDAndWorkspaceID(id, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrBudgetNotFound
		}
		return err
	}
	return s.BudgetRepo.Delete(id)
}
