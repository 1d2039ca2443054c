package repositories

import (
	"gorm.io/gorm"

	"recruitportal/internal/models"
)

// AuditLogFilter - критерии выборки журнала для админа
type AuditLogFilter struct {
	EntityType string
	ActorID    string
	Page       int
	PageSize   int
}

type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
	List(filter AuditLogFilter) ([]models.AuditLog, int64, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepository) List(filter AuditLogFilter) ([]models.AuditLog, int64, error) {
	query := r.db.Model(&models.AuditLog{})

	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	var entries []models.AuditLog
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	return entries, total, err
}
