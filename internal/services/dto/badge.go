package dto

type AwardBadgeRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,notblank"`
	Note      string `json:"note"`
}

type SendMessageRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Text      string `json:"text" validate:"required,notblank"`
}
