package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	JobPostingService   JobPostingService
	ApplicationService  ApplicationService
	CandidateService    CandidateService
	TicketService       TicketService
	TranscriptService   TranscriptService
	ChallengeService    ChallengeService
	BadgeService        BadgeService
	AnalyticsService    AnalyticsService
	NotificationService NotificationService
}
