package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.DB.Create(notification).Error
}

func (r *NotificationRepository) FindByWorkspaceID(workspaceID uint, unreadOnly bool, limit int) ([]model.Notification, error) {
	query := r.DB.Where("workspace_id = ?", workspaceID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []model.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(workspaceID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("workspace_id = ? AND is_read = ?", workspaceID, false).
		Update("is_read", true).Error
}
