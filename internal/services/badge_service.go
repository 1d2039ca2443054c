package services

import (
	"context"

	"recruitportal/internal/models"
	"recruitportal/internal/notify"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/pkg/apperrors"
)

type BadgeService interface {
	Award(ctx context.Context, employerID string, req *dto.AwardBadgeRequest) (*models.Badge, error)
	ListMine(studentID string) ([]models.Badge, error)
	SendMessage(ctx context.Context, employerID string, req *dto.SendMessageRequest) error
}

type badgeService struct {
	badgeRepo  repositories.BadgeRepository
	userRepo   repositories.UserRepository
	dispatcher notify.Dispatcher
}

func NewBadgeService(
	badgeRepo repositories.BadgeRepository,
	userRepo repositories.UserRepository,
	dispatcher notify.Dispatcher,
) BadgeService {
	return &badgeService{
		badgeRepo:  badgeRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

// Award - выдача бейджа студенту работодателем
func (s *badgeService) Award(ctx context.Context, employerID string, req *dto.AwardBadgeRequest) (*models.Badge, error) {
	if err := s.ensureStudent(req.StudentID); err != nil {
		return nil, err
	}

	badge := &models.Badge{
		StudentID: req.StudentID,
		Name:      req.Name,
		AwardedBy: employerID,
		Note:      req.Note,
	}
	if err := s.badgeRepo.Create(badge); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.dispatcher.Dispatch(ctx, notify.BadgeAwarded(req.StudentID, req.Name))

	return badge, nil
}

func (s *badgeService) ListMine(studentID string) ([]models.Badge, error) {
	badges, err := s.badgeRepo.ListByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return badges, nil
}

// SendMessage - прямое сообщение работодателя кандидату.
// Доставляется как уведомление, истории переписки нет.
func (s *badgeService) SendMessage(ctx context.Context, employerID string, req *dto.SendMessageRequest) error {
	if err := s.ensureStudent(req.StudentID); err != nil {
		return err
	}

	sender, err := s.userRepo.FindByID(employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	s.dispatcher.Dispatch(ctx, notify.DirectMessage(req.StudentID, sender.Name, req.Text))
	return nil
}

func (s *badgeService) ensureStudent(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleStudent {
		return apperrors.ErrInvalidUserRole
	}
	return nil
}
