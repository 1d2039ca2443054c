package repositories

import (
	"gorm.io/gorm"

	"recruitportal/internal/models"
)

type BadgeRepository interface {
	Create(badge *models.Badge) error
	ListByStudent(studentID string) ([]models.Badge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) Create(badge *models.Badge) error {
	return r.db.Create(badge).Error
}

func (r *badgeRepository) ListByStudent(studentID string) ([]models.Badge, error) {
	var badges []models.Badge
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&badges).Error
	return badges, err
}
