package service

import (
	"fmt"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultMaxMilestones = 8

// milestoneRewards are small celebration texts, indexed by milestone
// position. The last entry is reused when a goal has more milestones than
// the list has entries.
var milestoneRewards = map[model.GoalType][]string{
	model.GoalVacation: {
		"Browse destinations for your trip",
		"Book a night at your favourite restaurant",
		"Buy a travel guide",
		"Start planning the itinerary",
	},
	model.GoalHouse: {
		"Visit an open house this weekend",
		"Treat yourself to a home magazine",
		"Tour your target neighbourhood",
	},
	model.GoalDebtPayment: {
		"Celebrate with a movie night at home",
		"Share the progress with someone close",
		"Plan what you'll do debt-free",
	},
}

var defaultRewards = []string{
	"Treat yourself to something small",
	"Take an evening off",
	"Share the milestone with a friend",
	"Plan the next step",
}

// MilestoneTracker generates the quarterly milestone schedule for a goal and
// completes milestones as the current amount crosses their thresholds.
type MilestoneTracker struct {
	Milestones    MilestoneStore
	Notifier      Notifier
	MaxMilestones int
}

func NewMilestoneTracker(milestones MilestoneStore, notifier Notifier) *MilestoneTracker {
	return &MilestoneTracker{
		Milestones:    milestones,
		Notifier:      notifier,
		MaxMilestones: defaultMaxMilestones,
	}
}

// Generate splits the goal into evenly sized milestones, one per quarter
// until the target date, capped at MaxMilestones and never fewer than one.
func (t *MilestoneTracker) Generate(goal *model.Goal) ([]model.GoalMilestone, error) {
	now := timeNow()

	days := int(goal.TargetDate.Sub(now).Hours() / 24)
	if days < 1 {
		days = 1
	}

	count := (days + 89) / 90
	if count > t.MaxMilestones {
		count = t.MaxMilestones
	}
	if count < 1 {
		count = 1
	}

	rewards := milestoneRewards[goal.Type]
	if len(rewards) == 0 {
		rewards = defaultRewards
	}

	milestones := make([]model.GoalMilestone, 0, count)
	for i := 1; i <= count; i++ {
		amount := goal.TargetAmount.
			Mul(decimal.NewFromInt(int64(i))).
			Div(decimal.NewFromInt(int64(count))).
			Round(2)

		rewardIdx := i - 1
		if rewardIdx >= len(rewards) {
			rewardIdx = len(rewards) - 1
		}

		milestones = append(milestones, model.GoalMilestone{
			GoalID:       goal.ID,
			Name:         fmt.Sprintf("%d%% of %s", i*100/count, goal.Name),
			TargetAmount: amount,
			TargetDate:   now.AddDate(0, 3*i, 0),
			Order:        i,
			Reward:       rewards[rewardIdx],
		})
	}

	if err := t.Milestones.CreateBatch(milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

// UpdateProgress completes every incomplete milestone whose threshold the
// current amount has crossed, in ascending order. Completed milestones are
// never re-evaluated.
func (t *MilestoneTracker) UpdateProgress(goalID, workspaceID uint, currentAmount decimal.Decimal) error {
	milestones, err := t.Milestones.FindIncompleteByGoalID(goalID)
	if err != nil {
		return err
	}

	for _, milestone := range milestones {
		if currentAmount.LessThan(milestone.TargetAmount) {
			continue
		}

		if err := t.Milestones.MarkCompleted(milestone.ID); err != nil {
			return err
		}

		message := fmt.Sprintf("You reached the milestone \"%s\".", milestone.Name)
		if milestone.Reward != "" {
			message += fmt.Sprintf(" Reward: %s", milestone.Reward)
		}
		if err := t.Notifier.Notify(workspaceID, "milestone_reached", "Milestone Reached", message); err != nil {
			logger.Log.Error("milestone notification failed", zap.Error(err), zap.Uint("milestoneId", milestone.ID))
		}
	}

	return nil
}
