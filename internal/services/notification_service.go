package services

import (
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/pkg/apperrors"
)

type NotificationService interface {
	ListMine(userID string) ([]models.Notification, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
	UnreadCount(userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListMine(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным.
// Фильтр по userID в запросе не дает пометить чужое уведомление.
func (s *notificationService) MarkRead(userID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
