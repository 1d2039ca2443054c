package models

// Ticket - обращение в службу поддержки.
// Пользователь привязан по email (так делает и портал).
type Ticket struct {
	BaseModel
	UserEmail  string       `gorm:"not null;index" json:"user_email"`
	Subject    string       `gorm:"not null" json:"subject"`
	Body       string       `gorm:"type:text" json:"body"`
	Status     TicketStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	Resolution string       `gorm:"type:text" json:"resolution,omitempty"`
}
