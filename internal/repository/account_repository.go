package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(account *model.Account) error {
	return r.DB.Create(account).Error
}

func (r *AccountRepository) Update(account *model.Account) error {
	return r.DB.Save(account).Error
}

func (r *AccountRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Account{}, id).Error
}

func (r *AccountRepository) FindByID(id uint) (*model.Account, error) {
	var account model.Account
	err := r.DB.First(&account, id).Error
	return &account, err
}

func (r *AccountRepository) FindByIDAndWorkspaceID(id, workspaceID uint) (*model.Account, error) {
	var account model.Account
	err := r.DB.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&account).Error
	return &account, err
}

func (r *AccountRepository) FindByWorkspaceID(workspaceID uint) ([]model.Account, error) {
	var accounts []model.Account
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("name").Find(&accounts).Error
	return accounts, err
}

// AdjustBalance applies a signed delta to the stored balance.
func (r *AccountRepository) AdjustBalance(id uint, delta decimal.Decimal) error {
	return r.DB.Model(&model.Account{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}
