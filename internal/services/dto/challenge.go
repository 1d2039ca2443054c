package dto

type CreateChallengeRequest struct {
	Title     string `json:"title" validate:"required,notblank"`
	Prompt    string `json:"prompt" validate:"required,notblank"`
	BadgeName string `json:"badge_name" validate:"required,notblank"`
}

type SubmitChallengeRequest struct {
	Answer string `json:"answer" validate:"required,notblank"`
}

type ReviewSubmissionRequest struct {
	Note string `json:"note"`
}
