package repositories

import "errors"

// Сентинельные ошибки слоя репозиториев.
// Сервисы маппят их на apperrors, не зная про gorm.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrJobPostingNotFound  = errors.New("job posting not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTranscriptNotFound  = errors.New("transcript request not found")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
)
