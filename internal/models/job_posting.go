package models

import "time"

// JobPosting - вакансия работодателя.
// Создается в статусе pending и проходит модерацию админом.
// ModerationReason хранит причину последнего reject/revoke;
// approve всегда очищает ее.
type JobPosting struct {
	BaseModel
	EmployerID       string           `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title            string           `gorm:"not null" json:"title"`
	Company          string           `gorm:"not null" json:"company"`
	Description      string           `gorm:"type:text" json:"description"`
	Location         string           `json:"location"`
	Deadline         *time.Time       `json:"deadline,omitempty"`
	Status           JobPostingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ModerationReason string           `json:"reason"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"-"`
}
