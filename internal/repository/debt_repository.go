package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DebtRepository struct {
	DB *gorm.DB
}

func NewDebtRepository(db *gorm.DB) *DebtRepository {
	return &DebtRepository{DB: db}
}

func (r *DebtRepository) Create(debt *model.Debt) error {
	return r.DB.Create(debt).Error
}

func (r *DebtRepository) Update(debt *model.Debt) error {
	return r.DB.Save(debt).Error
}

func (r *DebtRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Debt{}, id).Error
}

func (r *DebtRepository) FindByID(id uint) (*model.Debt, error) {
	var debt model.Debt
	err := r.DB.First(&debt, id).Error
	return &debt, err
}

func (r *DebtRepository) FindByIDAndWorkspaceID(id, workspaceID uint) (*model.Debt, error) {
	var debt model.Debt
	err := r.DB.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&debt).Error
	return &debt, err
}

func (r *DebtRepository) FindByWorkspaceID(workspaceID uint) ([]model.Debt, error) {
	var debts []model.Debt
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("created_at").Find(&debts).Error
	return debts, err
}

func (r *DebtRepository) FindActiveByWorkspaceID(workspaceID uint) ([]model.Debt, error) {
	var debts []model.Debt
	err := r.DB.Where("workspace_id = ? AND status = ?", workspaceID, model.DebtActive).
		Order("interest_rate DESC").Find(&debts).Error
	return debts, err
}

// ApplyPayment decreases the remaining amount, flooring at zero, and flips the
// status to paid_off when fully repaid.
func (r *DebtRepository) ApplyPayment(id uint, amount decimal.Decimal) error {
	debt, err := r.FindByID(id)
	if err != nil {
		return err
	}

	remaining := debt.RemainingAmount.Sub(amount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	updates := map[string]interface{}{"remaining_amount": remaining}
	if remaining.IsZero() {
		updates["status"] = model.DebtPaidOff
	}

	return r.DB.Model(&model.Debt{}).Where("id = ?", id).Updates(updates).Error
}
