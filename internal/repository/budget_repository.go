package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{DB: db}
}

func (r *BudgetRepository) Create(budget *model.Budget) error {
	return r.DB.Create(budget).Error
}

func (r *BudgetRepository) Update(budget *model.Budget) error {
	return r.DB.Save(budget).Error
}

func (r *BudgetRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Budget{}, id).Error
}

func (r *BudgetRepository) FindByIDAndWorkspaceID(id, workspaceID uint) (*model.Budget, error) {
	var budget model.Budget
	err := r.DB.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&budget).Error
	return &budget, err
}

func (r *BudgetRepository) FindByWorkspaceID(workspaceID uint) ([]model.Budget, error) {
	var budgets []model.Budget
	err := r.DB.Where("workspace_id = ?", workspaceID).Find(&budgets).Error
	return budgets, err
}
