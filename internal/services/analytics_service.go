package services

import (
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/pkg/apperrors"
)

type AnalyticsService interface {
	PlatformOverview() (*dto.PlatformOverview, error)
	AuditLogs(filter repositories.AuditLogFilter) ([]models.AuditLog, int64, error)
}

type analyticsService struct {
	userRepo        repositories.UserRepository
	postingRepo     repositories.JobPostingRepository
	applicationRepo repositories.ApplicationRepository
	ticketRepo      repositories.TicketRepository
	auditRepo       repositories.AuditLogRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	postingRepo repositories.JobPostingRepository,
	applicationRepo repositories.ApplicationRepository,
	ticketRepo repositories.TicketRepository,
	auditRepo repositories.AuditLogRepository,
) AnalyticsService {
	return &analyticsService{
		userRepo:        userRepo,
		postingRepo:     postingRepo,
		applicationRepo: applicationRepo,
		ticketRepo:      ticketRepo,
		auditRepo:       auditRepo,
	}
}

// PlatformOverview - сводка по платформе для админской панели
func (s *analyticsService) PlatformOverview() (*dto.PlatformOverview, error) {
	usersByRole, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	postingsByStatus, err := s.postingRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applicationsByStatus, err := s.applicationRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	openTickets, err := s.ticketRepo.CountOpen()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PlatformOverview{
		UsersByRole:          usersByRole,
		PostingsByStatus:     postingsByStatus,
		ApplicationsByStatus: applicationsByStatus,
		OpenTickets:          openTickets,
	}, nil
}

// AuditLogs - постраничный журнал переходов для админа
func (s *analyticsService) AuditLogs(filter repositories.AuditLogFilter) ([]models.AuditLog, int64, error) {
	entries, total, err := s.auditRepo.List(filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return entries, total, nil
}
