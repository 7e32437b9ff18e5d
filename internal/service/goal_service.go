package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TrackResult reports one transaction's classification outcome: how many
// goals it was attributed to and their names.
type TrackResult struct {
	Tracked int      `json:"tracked"`
	Goals   []string `json:"goals"`
}

// GoalService is the engine facade the controllers call. CRUD goes straight
// to the repositories; the tracking entry points fan out to the classifier,
// ledger, milestone, insight, suggestion, and health components.
type GoalService struct {
	GoalRepo      *repository.GoalRepository
	Contributions *repository.ContributionRepository
	Milestones    *repository.MilestoneRepository
	Insights      *repository.InsightRepository
	Transactions  *repository.TransactionRepository

	Classifier *TransactionClassifier
	Ledger     *ContributionLedger
	Tracker    *MilestoneTracker
	Insight    *InsightGenerator
	Suggest    *SuggestionGenerator
	Health     *FinancialHealthService
	Notifier   Notifier
}

func NewGoalService(
	goalRepo *repository.GoalRepository,
	contributions *repository.ContributionRepository,
	milestones *repository.MilestoneRepository,
	insights *repository.InsightRepository,
	transactions *repository.TransactionRepository,
	classifier *TransactionClassifier,
	ledger *ContributionLedger,
	tracker *MilestoneTracker,
	insight *InsightGenerator,
	suggest *SuggestionGenerator,
	health *FinancialHealthService,
	notifier Notifier,
) *GoalService {
	return &GoalService{
		GoalRepo:      goalRepo,
		Contributions: contributions,
		Milestones:    milestones,
		Insights:      insights,
		Transactions:  transactions,
		Classifier:    classifier,
		Ledger:        ledger,
		Tracker:       tracker,
		Insight:       insight,
		Suggest:       suggest,
		Health:        health,
		Notifier:      notifier,
	}
}

func (s *GoalService) CreateGoal(goal *model.Goal) error {
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidAmount
	}
	if goal.Status == "" {
		goal.Status = model.GoalActive
	}
	if goal.Priority == "" {
		goal.Priority = model.PriorityMedium
	}
	return s.GoalRepo.Create(goal)
}

func (s *GoalService) UpdateGoal(goalID, workspaceID uint, updated *model.Goal) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndWorkspaceID(goalID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}
	updated.ID = goal.ID
	if err := s.GoalRepo.Update(updated); err != nil {
		return nil, err
	}
	return s.GoalRepo.FindByID(goal.ID)
}

func (s *GoalService) DeleteGoal(goalID, workspaceID uint) error {
	if _, err := s.GoalRepo.FindByIDAndWorkspaceID(goalID, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGoalNotFound
		}
		return err
	}
	if err := s.Milestones.DeleteByGoalID(goalID); err != nil {
		return err
	}
	return s.GoalRepo.Delete(goalID)
}

func (s *GoalService) GetGoal(goalID, workspaceID uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndWorkspaceID(goalID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) ListGoals(workspaceID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByWorkspaceID(workspaceID)
}

func (s *GoalService) ListMilestones(goalID, workspaceID uint) ([]model.GoalMilestone, error) {
	if _, err := s.GetGoal(goalID, workspaceID); err != nil {
		return nil, err
	}
	return s.Milestones.FindByGoalID(goalID)
}

func (s *GoalService) ListContributions(goalID, workspaceID uint) ([]model.GoalContribution, error) {
	if _, err := s.GetGoal(goalID, workspaceID); err != nil {
		return nil, err
	}
	return s.Contributions.FindByGoalID(goalID)
}

// AddProgress records a manual contribution and recomputes the goal.
func (s *GoalService) AddProgress(goalID, workspaceID uint, amount decimal.Decimal, note string) (*model.Goal, error) {
	goal, err := s.GetGoal(goalID, workspaceID)
	if err != nil {
		return nil, err
	}
	if goal.Status != model.GoalActive {
		return nil, util.ErrGoalNotActive
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}
	if err := s.Ledger.RecordManual(goal, amount, note); err != nil {
		return nil, err
	}
	if err := s.Ledger.Recompute(goalID); err != nil {
		return nil, err
	}
	return s.GoalRepo.FindByID(goalID)
}

// UpdateGoalProgress recomputes one goal's current amount from its ledger.
// An unknown goal is a no-op.
func (s *GoalService) UpdateGoalProgress(goalID, workspaceID uint) error {
	_, err := s.GoalRepo.FindByIDAndWorkspaceID(goalID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.Ledger.Recompute(goalID)
}

// ProcessTransactionForGoals classifies one transaction against every
// auto-tracking goal in the workspace and records the matches. Failures are
// isolated per goal: a persistence error for one goal is logged and the loop
// moves on.
func (s *GoalService) ProcessTransactionForGoals(transactionID, workspaceID uint) (*TrackResult, error) {
	result := &TrackResult{Goals: []string{}}

	tx, err := s.Transactions.FindByIDAndWorkspaceID(transactionID, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, nil
		}
		return nil, err
	}

	goals, err := s.GoalRepo.FindAutoTracking(workspaceID)
	if err != nil {
		return nil, err
	}

	matches := s.Classifier.Classify(tx, goals)
	for _, match := range matches {
		if err := s.Ledger.Record(match.Goal, tx, match.ContributionType, match.Reason); err != nil {
			logger.Log.Error("contribution record failed",
				zap.Error(err),
				zap.Uint("goalId", match.Goal.ID),
				zap.Uint("transactionId", tx.ID))
			continue
		}
		if err := s.Ledger.Recompute(match.Goal.ID); err != nil {
			logger.Log.Error("goal recompute failed",
				zap.Error(err),
				zap.Uint("goalId", match.Goal.ID))
			continue
		}
		result.Tracked++
		result.Goals = append(result.Goals, match.Goal.Name)
	}
	return result, nil
}

func (s *GoalService) GenerateGoalSuggestions(ctx context.Context, workspaceID uint) ([]GoalSuggestion, error) {
	return s.Suggest.Generate(ctx, workspaceID)
}

// CreateSmartMilestones replaces a goal's milestone schedule with a freshly
// generated one.
func (s *GoalService) CreateSmartMilestones(goalID, workspaceID uint) ([]model.GoalMilestone, error) {
	goal, err := s.GetGoal(goalID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.Milestones.DeleteByGoalID(goal.ID); err != nil {
		return nil, err
	}
	return s.Tracker.Generate(goal)
}

func (s *GoalService) GenerateGoalInsights(goalID, workspaceID uint) ([]model.GoalInsight, error) {
	return s.Insight.Generate(goalID, workspaceID)
}

func (s *GoalService) ListInsights(workspaceID uint, limit int) ([]model.GoalInsight, error) {
	return s.Insights.FindByWorkspaceID(workspaceID, limit)
}

func (s *GoalService) CalculateGoalImpactOnFinancialHealth(workspaceID uint) (*HealthReport, error) {
	return s.Health.Score(workspaceID)
}

// CompleteGoal marks a goal completed regardless of progress.
func (s *GoalService) CompleteGoal(goalID, workspaceID uint) (*model.Goal, error) {
	goal, err := s.GetGoal(goalID, workspaceID)
	if err != nil {
		return nil, err
	}
	if goal.Status == model.GoalCompleted {
		return goal, nil
	}
	if err := s.GoalRepo.MarkCompleted(goal.ID); err != nil {
		return nil, err
	}
	if err := s.Notifier.Notify(goal.WorkspaceID, "goal_completed", "Goal Completed",
		fmt.Sprintf("Congratulations! You reached your goal %q.", goal.Name)); err != nil {
		logger.Log.Warn("completion notification failed", zap.Error(err), zap.Uint("goalId", goal.ID))
	}
	return s.GoalRepo.FindByID(goal.ID)
}
