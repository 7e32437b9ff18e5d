package repository

import (
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// TransactionFilter narrows workspace transaction listings.
type TransactionFilter struct {
	Type       model.TransactionType
	CategoryID uint
	AccountID  uint
	From       *time.Time
	To         *time.Time
}

func (r *TransactionRepository) Create(tx *model.Transaction) error {
	return r.DB.Create(tx).Error
}

func (r *TransactionRepository) Update(tx *model.Transaction) error {
	return r.DB.Save(tx).Error
}

func (r *TransactionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Transaction{}, id).Error
}

func (r *TransactionRepository) FindByID(id uint) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.DB.First(&tx, id).Error
	return &tx, err
}

func (r *TransactionRepository) FindByIDAndWorkspaceID(id, workspaceID uint) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.DB.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&tx).Error
	return &tx, err
}

func (r *TransactionRepository) FindByWorkspaceID(workspaceID uint, filter TransactionFilter, page, limit int) ([]model.Transaction, int64, error) {
	query := r.DB.Model(&model.Transaction{}).Where("workspace_id = ?", workspaceID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.AccountID > 0 {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []model.Transaction
	err := query.Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&txs).Error
	return txs, total, err
}

// SumAmountSince totals transaction amounts of the given types from `since`
// onward. Used by the spending/income analyzer.
func (r *TransactionRepository) SumAmountSince(workspaceID uint, types []model.TransactionType, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("workspace_id = ? AND type IN ? AND date >= ?", workspaceID, types, since).
		Scan(&sum).Error
	return sum, err
}

// CategorySpendSince totals expense transactions whose category name matches,
// joined with categories for name-based aggregation.
func (r *TransactionRepository) CategorySpendSince(workspaceID uint, categoryName string, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.Model(&model.Transaction{}).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.workspace_id = ? AND transactions.type = ? AND transactions.date >= ?",
			workspaceID, model.TransactionExpense, since).
		Where("LOWER(categories.name) LIKE ?", "%"+categoryName+"%").
		Scan(&sum).Error
	return sum, err
}
