package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"` // "interview_scheduled", "offer_made", "badge_awarded", ...
	Title   string         `gorm:"not null" json:"title"`
	Message string         `json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"application_id": "...", "job_posting_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}
