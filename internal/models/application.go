package models

// Application - отклик студента на вакансию.
// Терминальные статусы: rejected, hired.
// InterviewDate хранится строкой datetime-local ("2024-02-01T10:00"),
// как ее присылает клиент.
type Application struct {
	BaseModel
	ApplicantID   string            `gorm:"type:uuid;not null;index" json:"applicant_id"`
	JobPostingID  string            `gorm:"type:uuid;not null;index" json:"job_posting_id"`
	Status        ApplicationStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	InterviewDate string            `json:"interview_date,omitempty"`
	CoverNote     string            `gorm:"type:text" json:"cover_note"`

	Applicant  *User       `gorm:"foreignKey:ApplicantID" json:"-"`
	JobPosting *JobPosting `gorm:"foreignKey:JobPostingID" json:"-"`
}
