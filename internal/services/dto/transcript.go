package dto

type RequestTranscriptRequest struct {
	ApplicantID string `json:"applicant_id" validate:"required,uuid"`
}

type ApproveTranscriptRequest struct {
	TranscriptURL string `json:"transcript_url" validate:"required,notblank"`
}
