package repository

import (
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"name":              goal.Name,
			"description":       goal.Description,
			"type":              goal.Type,
			"target_amount":     goal.TargetAmount,
			"target_date":       goal.TargetDate,
			"priority":          goal.Priority,
			"status":            goal.Status,
			"is_auto_tracking":  goal.IsAutoTracking,
			"linked_account_id": goal.LinkedAccountID,
			"linked_debt_id":    goal.LinkedDebtID,
			"updated_at":        time.Now(),
		}).Error
}

func (r *GoalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Goal{}, id).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	return &goal, err
}

func (r *GoalRepository) FindByIDAndWorkspaceID(id, workspaceID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&goal).Error
	return &goal, err
}

func (r *GoalRepository) FindByWorkspaceID(workspaceID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("target_date").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindActiveByWorkspaceID(workspaceID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("workspace_id = ? AND status = ?", workspaceID, model.GoalActive).
		Order("target_date").Find(&goals).Error
	return goals, err
}

// FindAutoTracking returns the classification candidates: active goals with
// auto-tracking enabled.
func (r *GoalRepository) FindAutoTracking(workspaceID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("workspace_id = ? AND status = ? AND is_auto_tracking = ?",
		workspaceID, model.GoalActive, true).
		Find(&goals).Error
	return goals, err
}

// UpdateProgress persists the recomputed cache fields only.
func (r *GoalRepository) UpdateProgress(id uint, currentAmount decimal.Decimal) error {
	now := time.Now()
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_amount":       currentAmount,
			"last_progress_update": &now,
			"updated_at":           now,
		}).Error
}

// MarkCompleted transitions a goal to completed exactly once. The status
// guard keeps concurrent recomputes from re-stamping completed_at.
func (r *GoalRepository) MarkCompleted(id uint) error {
	now := time.Now()
	return r.DB.Model(&model.Goal{}).
		Where("id = ? AND status <> ?", id, model.GoalCompleted).
		Updates(map[string]interface{}{
			"status":       model.GoalCompleted,
			"completed_at": &now,
			"updated_at":   now,
		}).Error
}
