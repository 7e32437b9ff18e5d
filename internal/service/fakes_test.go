package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeGoalStore struct {
	goals map[uint]*model.Goal
}

func newFakeGoalStore(goals ...*model.Goal) *fakeGoalStore {
	s := &fakeGoalStore{goals: make(map[uint]*model.Goal)}
	for _, g := range goals {
		s.goals[g.ID] = g
	}
	return s
}

func (s *fakeGoalStore) FindByID(id uint) (*model.Goal, error) {
	goal, ok := s.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return goal, nil
}

func (s *fakeGoalStore) UpdateProgress(id uint, currentAmount decimal.Decimal) error {
	goal, ok := s.goals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	goal.CurrentAmount = currentAmount
	goal.LastProgressUpdate = &now
	return nil
}

func (s *fakeGoalStore) MarkCompleted(id uint) error {
	goal, ok := s.goals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if goal.Status != model.GoalCompleted {
		now := time.Now()
		goal.Status = model.GoalCompleted
		goal.CompletedAt = &now
	}
	return nil
}

type fakeContributionStore struct {
	entries   []model.GoalContribution
	txTypes   map[uint]model.TransactionType
	createErr error
	nextID    uint
}

func newFakeContributionStore() *fakeContributionStore {
	return &fakeContributionStore{txTypes: make(map[uint]model.TransactionType)}
}

func (s *fakeContributionStore) Create(contribution *model.GoalContribution) error {
	if s.createErr != nil {
		return s.createErr
	}
	if contribution.TransactionID != nil {
		for _, e := range s.entries {
			if e.GoalID == contribution.GoalID && e.TransactionID != nil &&
				*e.TransactionID == *contribution.TransactionID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	s.nextID++
	contribution.ID = s.nextID
	s.entries = append(s.entries, *contribution)
	return nil
}

func (s *fakeContributionStore) FindByGoalAndTransaction(goalID, transactionID uint) (*model.GoalContribution, error) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.GoalID == goalID && e.TransactionID != nil && *e.TransactionID == transactionID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeContributionStore) SumForGoal(goalID uint, excludeExpenses bool) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.GoalID != goalID {
			continue
		}
		if excludeExpenses && e.TransactionID != nil && s.txTypes[*e.TransactionID] == model.TransactionExpense {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum, nil
}

func (s *fakeContributionStore) SumSince(goalID uint, since time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.GoalID == goalID && !e.Date.Before(since) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

type fakeMilestoneStore struct {
	milestones []model.GoalMilestone
	batchErr   error
}

func (s *fakeMilestoneStore) CreateBatch(milestones []model.GoalMilestone) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	for i := range milestones {
		milestones[i].ID = uint(len(s.milestones) + 1)
		s.milestones = append(s.milestones, milestones[i])
	}
	return nil
}

func (s *fakeMilestoneStore) FindIncompleteByGoalID(goalID uint) ([]model.GoalMilestone, error) {
	var out []model.GoalMilestone
	for _, m := range s.milestones {
		if m.GoalID == goalID && !m.IsCompleted {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMilestoneStore) MarkCompleted(id uint) error {
	for i := range s.milestones {
		if s.milestones[i].ID == id && !s.milestones[i].IsCompleted {
			now := time.Now()
			s.milestones[i].IsCompleted = true
			s.milestones[i].CompletedAt = &now
		}
	}
	return nil
}

type fakeInsightStore struct {
	created []model.GoalInsight
}

func (s *fakeInsightStore) CreateBatch(insights []model.GoalInsight) error {
	s.created = append(s.created, insights...)
	return nil
}

type fakeDebtReader struct {
	debts map[uint]*model.Debt
}

func (s *fakeDebtReader) FindByID(id uint) (*model.Debt, error) {
	debt, ok := s.debts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return debt, nil
}

type notification struct {
	workspaceID uint
	kind        string
	title       string
	message     string
}

type fakeNotifier struct {
	sent []notification
	err  error
}

func (n *fakeNotifier) Notify(workspaceID uint, notificationType, title, message string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification{workspaceID, notificationType, title, message})
	return nil
}

type fakeGoalLister struct {
	goals []model.Goal
}

func (s *fakeGoalLister) FindByWorkspaceID(workspaceID uint) ([]model.Goal, error) {
	return s.goals, nil
}

type fakeDebtLister struct {
	debts []model.Debt
}

func (s *fakeDebtLister) FindActiveByWorkspaceID(workspaceID uint) ([]model.Debt, error) {
	return s.debts, nil
}

type fakeSpending struct {
	snapshot *SpendingSnapshot
}

func (s *fakeSpending) Snapshot(ctx context.Context, workspaceID uint) (*SpendingSnapshot, error) {
	return s.snapshot, nil
}
