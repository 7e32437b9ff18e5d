package service

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"gorm.io/gorm"
)

type AccountService struct {
	AccountRepo *repository.AccountRepository
}

func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{AccountRepo: accountRepo}
}

func (s *AccountService) Create(account *model.Account) error {
	return s.AccountRepo.Create(account)
}

func (s *AccountService) Get(id, workspaceID uint) (*model.Account, error) {
	account, err := s.AccountRepo.FindByIDAndWorkspaceID(id, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) List(workspaceID uint) ([]model.Account, error) {
	return s.AccountRepo.FindByWorkspaceID(workspaceID)
}

func (s *AccountService) Update(id, workspaceID uint, updated *model.Account) (*model.Account, error) {
	account, err := s.Get(id, workspaceID)
	if err != nil {
		return nil, err
	}
	account.Name = updated.Name
	account.Type = updated.Type
	account.Currency = updated.Currency
	if err := s.AccountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Delete(id, workspaceID uint) error {
	if _, err := s.Get(id, workspaceID); err != nil {
		return err
	}
	return s.AccountRepo.Delete(id)
}
