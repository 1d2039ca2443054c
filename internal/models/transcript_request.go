package models

// TranscriptRequest - запрос академического транскрипта кандидата.
// Отсутствие записи == состояние "none". Живой запрос
// (pending или approved) блокирует создание дубликата.
type TranscriptRequest struct {
	BaseModel
	ApplicantID   string                  `gorm:"type:uuid;not null;index" json:"applicant_id"`
	RequestedBy   string                  `gorm:"type:uuid;not null" json:"requested_by"`
	Status        TranscriptRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TranscriptURL string                  `json:"transcript_url,omitempty"`

	Applicant *User `gorm:"foreignKey:ApplicantID" json:"-"`
}
