package repository

import (
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

type MilestoneRepository struct {
	DB *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{DB: db}
}

func (r *MilestoneRepository) CreateBatch(milestones []model.GoalMilestone) error {
	if len(milestones) == 0 {
		return nil
	}
	return r.DB.Create(&milestones).Error
}

func (r *MilestoneRepository) FindByGoalID(goalID uint) ([]model.GoalMilestone, error) {
	var milestones []model.GoalMilestone
	err := r.DB.Where("goal_id = ?", goalID).Order("sequence").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) FindIncompleteByGoalID(goalID uint) ([]model.GoalMilestone, error) {
	var milestones []model.GoalMilestone
	err := r.DB.Where("goal_id = ? AND is_completed = ?", goalID, false).
		Order("sequence").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) DeleteByGoalID(goalID uint) error {
	return r.DB.Where("goal_id = ?", goalID).Delete(&model.GoalMilestone{}).Error
}

// MarkCompleted stamps a milestone once; completed milestones never revert.
func (r *MilestoneRepository) MarkCompleted(id uint) error {
	now := time.Now()
	return r.DB.Model(&model.GoalMilestone{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": &now,
			"updated_at":   now,
		}).Error
}
