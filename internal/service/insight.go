package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InsightGenerator inspects a single goal's pace against its deadline and
// produces alert/recommendation records. Each call evaluates every rule once
// and persists the results in one batch; deduplication across calls is the
// caller's concern.
type InsightGenerator struct {
	Goals         GoalStore
	Contributions ContributionStore
	Insights      InsightStore
}

func NewInsightGenerator(goals GoalStore, contributions ContributionStore, insights InsightStore) *InsightGenerator {
	return &InsightGenerator{
		Goals:         goals,
		Contributions: contributions,
		Insights:      insights,
	}
}

// Generate evaluates the at-risk, pace, and auto-tracking rules for one goal.
// A missing goal is a no-op. The returned slice is what was persisted.
func (g *InsightGenerator) Generate(goalID, workspaceID uint) ([]model.GoalInsight, error) {
	goal, err := g.Goals.FindByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if goal.WorkspaceID != workspaceID {
		return nil, nil
	}

	now := timeNow()
	progress := goal.Progress()
	daysLeft := goal.TargetDate.Sub(now).Hours() / 24
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)

	var insights []model.GoalInsight
	id := goal.ID

	if progress < 25 && daysLeft < 90 {
		monthsLeft := daysLeft / 30
		if monthsLeft < 1 {
			monthsLeft = 1
		}
		suggested := remaining.Div(decimal.NewFromFloat(monthsLeft)).Round(2)
		payload, _ := json.Marshal(map[string]interface{}{
			"progress":          progress,
			"daysLeft":          int(daysLeft),
			"suggestedIncrease": suggested,
		})
		insights = append(insights, model.GoalInsight{
			GoalID:      &id,
			WorkspaceID: goal.WorkspaceID,
			Type:        model.InsightAlert,
			Title:       "Goal At Risk",
			Message: fmt.Sprintf("%s is only %.1f%% complete with %d days left. Consider contributing %s per month to catch up.",
				goal.Name, progress, int(daysLeft), suggested.StringFixed(2)),
			Severity:       model.SeverityWarning,
			ActionRequired: true,
			Data:           string(payload),
		})
	}

	if daysLeft > 0 && remaining.IsPositive() {
		recent, err := g.Contributions.SumSince(goal.ID, now.AddDate(0, -3, 0))
		if err != nil {
			return nil, err
		}
		actualMonthly := recent.Div(three)
		requiredMonthly := remaining.Div(decimal.NewFromFloat(daysLeft / 30))
		if actualMonthly.LessThan(requiredMonthly.Mul(decimal.NewFromFloat(0.8))) {
			shortfall := requiredMonthly.Sub(actualMonthly).Round(2)
			payload, _ := json.Marshal(map[string]interface{}{
				"actualMonthly":   actualMonthly.Round(2),
				"requiredMonthly": requiredMonthly.Round(2),
				"shortfall":       shortfall,
			})
			insights = append(insights, model.GoalInsight{
				GoalID:      &id,
				WorkspaceID: goal.WorkspaceID,
				Type:        model.InsightRecommendation,
				Title:       "Increase Contribution Pace",
				Message: fmt.Sprintf("You are contributing %s per month to %s but need %s per month to reach the target on time (shortfall %s).",
					actualMonthly.Round(2).StringFixed(2), goal.Name, requiredMonthly.Round(2).StringFixed(2), shortfall.StringFixed(2)),
				Severity: model.SeverityInfo,
				Data:     string(payload),
			})
		}
	}

	if !goal.IsAutoTracking {
		insights = append(insights, model.GoalInsight{
			GoalID:      &id,
			WorkspaceID: goal.WorkspaceID,
			Type:        model.InsightRecommendation,
			Title:       "Enable Auto-Tracking",
			Message:     fmt.Sprintf("Enable auto-tracking on %s so matching transactions count toward it automatically.", goal.Name),
			Severity:    model.SeverityInfo,
		})
	}

	if len(insights) == 0 {
		return nil, nil
	}
	if err := g.Insights.CreateBatch(insights); err != nil {
		return nil, err
	}
	return insights, nil
}
