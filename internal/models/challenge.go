package models

// SkillChallenge - задание на проверку навыков.
// BadgeName - бейдж, который выдается за одобренное решение.
type SkillChallenge struct {
	BaseModel
	Title     string `gorm:"not null" json:"title"`
	Prompt    string `gorm:"type:text;not null" json:"prompt"`
	BadgeName string `gorm:"not null" json:"badge_name"`
	Active    bool   `gorm:"default:true" json:"active"`
}

// ChallengeSubmission - решение студента, проходит модерацию админом
type ChallengeSubmission struct {
	BaseModel
	ChallengeID string           `gorm:"type:uuid;not null;index" json:"challenge_id"`
	StudentID   string           `gorm:"type:uuid;not null;index" json:"student_id"`
	Answer      string           `gorm:"type:text;not null" json:"answer"`
	Status      SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending_review';index" json:"status"`
	ReviewNote  string           `json:"review_note,omitempty"`

	Challenge *SkillChallenge `gorm:"foreignKey:ChallengeID" json:"-"`
	Student   *User           `gorm:"foreignKey:StudentID" json:"-"`
}
