package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	JobPostingHandler   *JobPostingHandler
	ApplicationHandler  *ApplicationHandler
	CandidateHandler    *CandidateHandler
	TicketHandler       *TicketHandler
	TranscriptHandler   *TranscriptHandler
	ChallengeHandler    *ChallengeHandler
	BadgeHandler        *BadgeHandler
	AnalyticsHandler    *AnalyticsHandler
	NotificationHandler *NotificationHandler
}
