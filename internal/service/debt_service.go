package service

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"gorm.io/gorm"
)

type DebtService struct {
	DebtRepo *repository.DebtRepository
}

func NewDebtService(debtRepo *repository.DebtRepository) *DebtService {
	return &DebtService{DebtRepo: debtRepo}
}

func (s *DebtService) Create(debt *model.Debt) error {
	if debt.RemainingAmount.IsZero() {
		debt.RemainingAmount = debt.TotalAmount
	}
	if debt.Status == "" {
		debt.Status = model.DebtActive
	}
	return s.DebtRepo.Create(debt)
}

func (s *DebtService) Get(id, workspaceID uint) (*model.Debt, error) {
	debt, err := s.DebtRepo.FindByIDAndWorkspaceID(id, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDebtNotFound
		}
		return nil, err
	}
	return debt, nil
}

func (s *DebtService) List(workspaceID uint) ([]model.Debt, error) {
	return s.DebtRepo.FindByWorkspaceID(workspaceID)
}

func (s *DebtService) Update(id, workspaceID uint, updated *model.Debt) (*model.Debt, error) {
	debt, err := s.Get(id, workspaceID)
	if err != nil {
		return nil, err
	}
	debt.Name = updated.Name
	debt.InterestRate = updated.InterestRate
	debt.MonthlyPayment = updated.MonthlyPayment
	debt.DueDate = updated.DueDate
	if err := s.DebtRepo.Update(debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *DebtService) Delete(id, workspaceID uint) error {
	if _, err := s.Get(id, workspaceID); err != nil {
		return err
	}
	return s.DebtRepo.Delete(id)
}
