package service

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
)

// NotificationService persists workspace notifications. It is the Notifier
// the engine components emit through; delivery and display live elsewhere.
type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

func (s *NotificationService) Notify(workspaceID uint, notificationType, title, message string) error {
	return s.NotificationRepo.Create(&model.Notification{
		WorkspaceID: workspaceID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
	})
}

func (s *NotificationService) List(workspaceID uint, unreadOnly bool, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.NotificationRepo.FindByWorkspaceID(workspaceID, unreadOnly, limit)
}

func (s *NotificationService) MarkRead(id uint) error {
	return s.NotificationRepo.MarkRead(id)
}

func (s *NotificationService) MarkAllRead(workspaceID uint) error {
	return s.NotificationRepo.MarkAllRead(workspaceID)
}
