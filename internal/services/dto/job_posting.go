package dto

import "time"

type CreateJobPostingRequest struct {
	Title       string     `json:"title" validate:"required,notblank"`
	Company     string     `json:"company" validate:"required,notblank"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type UpdateJobPostingRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,notblank"`
	Company     *string    `json:"company,omitempty" validate:"omitempty,notblank"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// ModerationRequest - тело approve/reject/revoke.
// Для reject/revoke причина обязательна; проверяет это машина
// переходов, а не binding, поэтому здесь reason без required.
type ModerationRequest struct {
	Reason string `json:"reason"`
}
