package service

import (
	"errors"
	"fmt"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/monitoring"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

// ContributionLedger records classified matches idempotently and recomputes
// a goal's cached current amount from its ledger (or from the linked debt's
// paid amount for debt_payment goals).
type ContributionLedger struct {
	Goals         GoalStore
	Contributions ContributionStore
	Debts         DebtReader
	Milestones    *MilestoneTracker
	Notifier      Notifier
}

func NewContributionLedger(
	goals GoalStore,
	contributions ContributionStore,
	debts DebtReader,
	milestones *MilestoneTracker,
	notifier Notifier,
) *ContributionLedger {
	return &ContributionLedger{
		Goals:         goals,
		Contributions: contributions,
		Debts:         debts,
		Milestones:    milestones,
		Notifier:      notifier,
	}
}

// Record inserts one ledger entry for a (goal, transaction) pair. Duplicates
// are not an error: the prior-entry query catches most of them and the unique
// index on (goal_id, transaction_id) catches the rest under concurrency.
func (l *ContributionLedger) Record(goal *model.Goal, tx *model.Transaction, contributionType model.ContributionType, reason string) error {
	_, err := l.Contributions.FindByGoalAndTransaction(goal.ID, tx.ID)
	if err == nil {
		monitoring.DuplicatesSkipped.Inc()
		logger.Log.Info("duplicate contribution skipped",
			zap.Uint("goalId", goal.ID),
			zap.Uint("transactionId", tx.ID),
		)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	transactionID := tx.ID
	contribution := &model.GoalContribution{
		GoalID:        goal.ID,
		TransactionID: &transactionID,
		WorkspaceID:   goal.WorkspaceID,
		Amount:        tx.Amount,
		Type:          contributionType,
		Source:        fmt.Sprintf("%s (%s)", tx.Description, reason),
		Date:          tx.Date,
	}

	if err := l.Contributions.Create(contribution); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			monitoring.DuplicatesSkipped.Inc()
			logger.Log.Info("duplicate contribution skipped by unique index",
				zap.Uint("goalId", goal.ID),
				zap.Uint("transactionId", tx.ID),
			)
			return nil
		}
		return err
	}

	monitoring.ContributionsRecorded.Inc()
	return nil
}

// RecordManual inserts a ledger entry with no originating transaction, for
// user-entered "add progress" actions.
func (l *ContributionLedger) RecordManual(goal *model.Goal, amount decimal.Decimal, note string) error {
	contribution := &model.GoalContribution{
		GoalID:      goal.ID,
		WorkspaceID: goal.WorkspaceID,
		Amount:      amount,
		Type:        model.ContributionManual,
		Source:      note,
		Date:        timeNow(),
	}

	if err := l.Contributions.Create(contribution); err != nil {
		return err
	}

	monitoring.ContributionsRecorded.Inc()
	return nil
}

// Recompute rebuilds the goal's current amount from source data and persists
// it, completing the goal when progress reaches 100%. A missing goal is a
// no-op. Errors propagate to the caller; the batch loop above isolates them
// per goal.
func (l *ContributionLedger) Recompute(goalID uint) error {
	goal, err := l.Goals.FindByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	newAmount, err := l.computeAmount(goal)
	if err != nil {
		return err
	}

	if newAmount.IsNegative() {
		newAmount = decimal.Zero
	}

	if err := l.Goals.UpdateProgress(goal.ID, newAmount); err != nil {
		return err
	}

	if !goal.TargetAmount.IsZero() && goal.Status != model.GoalCompleted {
		progress := newAmount.Div(goal.TargetAmount).Mul(oneHundred)
		if progress.GreaterThanOrEqual(oneHundred) {
			if err := l.Goals.MarkCompleted(goal.ID); err != nil {
				return err
			}
			monitoring.GoalsCompleted.Inc()
			if err := l.Notifier.Notify(goal.WorkspaceID, "goal_completed", "Goal Completed",
				fmt.Sprintf("Congratulations! You reached your goal \"%s\".", goal.Name)); err != nil {
				logger.Log.Error("goal completion notification failed", zap.Error(err), zap.Uint("goalId", goal.ID))
			}
		}
	}

	return l.Milestones.UpdateProgress(goal.ID, goal.WorkspaceID, newAmount)
}

func (l *ContributionLedger) computeAmount(goal *model.Goal) (decimal.Decimal, error) {
	if goal.Type == model.GoalDebtPayment && goal.LinkedDebtID != nil {
		debt, err := l.Debts.FindByID(*goal.LinkedDebtID)
		if err == nil {
			return debt.PaidAmount(), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, err
		}
		// linked debt gone: fall through to the ledger sum
	}

	// Expense-typed contributions must not inflate savings-style progress on
	// vacation/house goals; the exclusion checks the originating transaction's
	// type, not the free-text source.
	excludeExpenses := goal.Type == model.GoalVacation || goal.Type == model.GoalHouse
	return l.Contributions.SumForGoal(goal.ID, excludeExpenses)
}
