package repositories

import (
	"time"

	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string) ([]models.Notification, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)
	// DeleteReadOlderThan удаляет прочитанные уведомления старше cutoff.
	// Вызывается maintenance-воркером.
	DeleteReadOlderThan(cutoff time.Time) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(100).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkAsRead(userID, notificationID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
}

func (r *notificationRepository) MarkAllAsRead(userID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
}

func (r *notificationRepository) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) DeleteReadOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
