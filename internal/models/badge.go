package models

// Badge - награда студента. Выдается работодателем напрямую
// или автоматически при одобрении решения skill challenge.
type Badge struct {
	BaseModel
	StudentID string `gorm:"type:uuid;not null;index" json:"student_id"`
	Name      string `gorm:"not null" json:"name"`
	AwardedBy string `gorm:"type:uuid;not null" json:"awarded_by"`
	Note      string `json:"note,omitempty"`

	Student *User `gorm:"foreignKey:StudentID" json:"-"`
}
