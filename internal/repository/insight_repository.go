package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

type InsightRepository struct {
	DB *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{DB: db}
}

func (r *InsightRepository) CreateBatch(insights []model.GoalInsight) error {
	if len(insights) == 0 {
		return nil
	}
	return r.DB.Create(&insights).Error
}

func (r *InsightRepository) FindByWorkspaceID(workspaceID uint, limit int) ([]model.GoalInsight, error) {
	var insights []model.GoalInsight
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").Limit(limit).Find(&insights).Error
	return insights, err
}

func (r *InsightRepository) FindByGoalID(goalID uint) ([]model.GoalInsight, error) {
	var insights []model.GoalInsight
	err := r.DB.Where("goal_id = ?", goalID).Order("created_at DESC").Find(&insights).Error
	return insights, err
}
