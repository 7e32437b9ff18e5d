package repository

import (
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContributionRepository struct {
	DB *gorm.DB
}

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{DB: db}
}

func (r *ContributionRepository) Create(contribution *model.GoalContribution) error {
	return r.DB.Create(contribution).Error
}

// FindByGoalAndTransaction is the query half of the duplicate check; the
// unique index on (goal_id, transaction_id) is the authoritative half.
func (r *ContributionRepository) FindByGoalAndTransaction(goalID, transactionID uint) (*model.GoalContribution, error) {
	var contribution model.GoalContribution
	err := r.DB.Where("goal_id = ? AND transaction_id = ?", goalID, transactionID).
		First(&contribution).Error
	return &contribution, err
}

func (r *ContributionRepository) FindByGoalID(goalID uint) ([]model.GoalContribution, error) {
	var contributions []model.GoalContribution
	err := r.DB.Where("goal_id = ?", goalID).Order("date").Find(&contributions).Error
	return contributions, err
}

// SumForGoal totals the ledger for a goal. When excludeExpenses is set
// (vacation/house goals), entries whose originating transaction is an expense
// are left out of the sum; manual entries have no transaction and always
// count.
func (r *ContributionRepository) SumForGoal(goalID uint, excludeExpenses bool) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := r.DB.Model(&model.GoalContribution{}).
		Select("COALESCE(SUM(goal_contributions.amount), 0)").
		Where("goal_contributions.goal_id = ? AND goal_contributions.deleted_at IS NULL", goalID)

	if excludeExpenses {
		query = query.
			Joins("LEFT JOIN transactions ON transactions.id = goal_contributions.transaction_id").
			Where("transactions.id IS NULL OR transactions.type <> ?", model.TransactionExpense)
	}

	err := query.Scan(&sum).Error
	return sum, err
}

// SumSince totals ledger entries dated on or after `since`, for the pace
// analysis in the insight generator.
func (r *ContributionRepository) SumSince(goalID uint, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.Model(&model.GoalContribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("goal_id = ? AND date >= ?", goalID, since).
		Scan(&sum).Error
	return sum, err
}
