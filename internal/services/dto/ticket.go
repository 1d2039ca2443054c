package dto

type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required,notblank"`
	Body    string `json:"body" validate:"required,notblank"`
}

// ResolveTicketRequest - текст резолюции/причины эскалации.
// Пустая или пробельная строка блокируется машиной переходов.
type ResolveTicketRequest struct {
	Text string `json:"text"`
}
