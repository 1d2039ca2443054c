package dto

import "recruitportal/internal/models"

// PlatformOverview - сводка для админской панели аналитики
type PlatformOverview struct {
	UsersByRole          map[models.UserRole]int64          `json:"users_by_role"`
	PostingsByStatus     map[models.JobPostingStatus]int64  `json:"postings_by_status"`
	ApplicationsByStatus map[models.ApplicationStatus]int64 `json:"applications_by_status"`
	OpenTickets          int64                              `json:"open_tickets"`
}
