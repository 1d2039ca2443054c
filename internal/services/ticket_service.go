package services

import (
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

type TicketService interface {
	Create(userID string, req *dto.CreateTicketRequest) (*models.Ticket, error)
	ListMine(userID string) ([]models.Ticket, error)
	List(status models.TicketStatus) ([]models.Ticket, error)
	Transition(adminID string, adminRole models.UserRole, ticketID string, cmd workflow.Command, text string) (*models.Ticket, error)
}

type ticketService struct {
	ticketRepo repositories.TicketRepository
	userRepo   repositories.UserRepository
	auditRepo  repositories.AuditLogRepository
}

func NewTicketService(
	ticketRepo repositories.TicketRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditLogRepository,
) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
	}
}

// Create - новое обращение в поддержку. Тикет привязывается к email
// автора сессии, статус всегда open.
func (s *ticketService) Create(userID string, req *dto.CreateTicketRequest) (*models.Ticket, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		UserEmail: user.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		Status:    models.TicketStatusOpen,
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ticket, nil
}

func (s *ticketService) ListMine(userID string) ([]models.Ticket, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepo.ListByEmail(user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tickets, nil
}

// List - все тикеты для админа, опционально по статусу
func (s *ticketService) List(status models.TicketStatus) ([]models.Ticket, error) {
	var (
		tickets []models.Ticket
		err     error
	)
	if status == "" {
		tickets, err = s.ticketRepo.List()
	} else {
		tickets, err = s.ticketRepo.ListByStatus(status)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tickets, nil
}

// Transition - resolve/escalate тикета админом.
// text становится резолюцией тикета; его обязательность
// проверяет машина переходов.
func (s *ticketService) Transition(adminID string, adminRole models.UserRole, ticketID string, cmd workflow.Command, text string) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ticketID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	next, err := workflow.Ticket.Apply(workflow.State(ticket.Status), cmd, adminRole, text)
	if err != nil {
		return nil, err
	}

	previous := ticket.Status
	ticket.Status = models.TicketStatus(next)
	ticket.Resolution = text

	if err := s.ticketRepo.Update(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordAudit(s.auditRepo, adminID, adminRole, "ticket."+string(cmd), "ticket", ticket.ID,
		map[string]interface{}{"from": previous, "to": ticket.Status})

	return ticket, nil
}

func (s *ticketService) findUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
