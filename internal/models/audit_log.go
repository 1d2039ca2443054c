package models

import "gorm.io/datatypes"

// AuditLog - запись о выполненном переходе состояния.
// Пишется сервисом ПОСЛЕ успешного коммита перехода.
type AuditLog struct {
	BaseModel
	ActorID    string         `gorm:"type:uuid;not null;index" json:"actor_id"`
	ActorRole  UserRole       `gorm:"type:varchar(20);not null" json:"actor_role"`
	Action     string         `gorm:"not null;index" json:"action"` // команда перехода, напр. "job_posting.approve"
	EntityType string         `gorm:"not null;index" json:"entity_type"`
	EntityID   string         `gorm:"type:uuid;not null;index" json:"entity_id"`
	Detail     datatypes.JSON `gorm:"type:jsonb" json:"detail,omitempty"`
}
