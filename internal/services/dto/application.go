package dto

import "recruitportal/internal/models"

type ApplyRequest struct {
	JobPostingID string `json:"job_posting_id" validate:"required,uuid"`
	CoverNote    string `json:"cover_note"`
}

type ScheduleInterviewRequest struct {
	InterviewDateTime string `json:"interview_datetime" validate:"required,notblank"`
}

// ApplicationWithActions - отклик вместе с командами конвейера,
// доступными работодателю из текущего статуса
type ApplicationWithActions struct {
	models.Application
	AvailableActions []string `json:"available_actions"`
}
