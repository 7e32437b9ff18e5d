package service

import (
	"context"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
)

// timeNow is swapped out in tests that care about deadlines.
var timeNow = time.Now

// The goal engine components depend on these narrow store interfaces rather
// than on the concrete repositories, so each component can be exercised in
// isolation with in-memory fakes. The repository structs satisfy them.

type GoalStore interface {
	FindByID(id uint) (*model.Goal, error)
	UpdateProgress(id uint, currentAmount decimal.Decimal) error
	MarkCompleted(id uint) error
}

type GoalLister interface {
	FindByWorkspaceID(workspaceID uint) ([]model.Goal, error)
}

type ContributionStore interface {
	Create(contribution *model.GoalContribution) error
	FindByGoalAndTransaction(goalID, transactionID uint) (*model.GoalContribution, error)
	SumForGoal(goalID uint, excludeExpenses bool) (decimal.Decimal, error)
	SumSince(goalID uint, since time.Time) (decimal.Decimal, error)
}

type MilestoneStore interface {
	CreateBatch(milestones []model.GoalMilestone) error
	FindIncompleteByGoalID(goalID uint) ([]model.GoalMilestone, error)
	MarkCompleted(id uint) error
}

type InsightStore interface {
	CreateBatch(insights []model.GoalInsight) error
}

type DebtReader interface {
	FindByID(id uint) (*model.Debt, error)
}

type DebtLister interface {
	FindActiveByWorkspaceID(workspaceID uint) ([]model.Debt, error)
}

// Notifier is the notification sink. Delivery is external; the engine only
// inserts records.
type Notifier interface {
	Notify(workspaceID uint, notificationType, title, message string) error
}

// SpendingStats supplies the trailing three-month aggregates the suggestion
// generator and insight generator work from.
type SpendingStats interface {
	Snapshot(ctx context.Context, workspaceID uint) (*SpendingSnapshot, error)
}
