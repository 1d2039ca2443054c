package services

import (
	"context"

	"recruitportal/internal/logger"
	"recruitportal/internal/models"
	"recruitportal/internal/notify"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

type ChallengeService interface {
	CreateChallenge(req *dto.CreateChallengeRequest) (*models.SkillChallenge, error)
	ListActive() ([]models.SkillChallenge, error)
	Submit(studentID, challengeID string, req *dto.SubmitChallengeRequest) (*models.ChallengeSubmission, error)
	ListMySubmissions(studentID string) ([]models.ChallengeSubmission, error)
	ListPendingSubmissions() ([]models.ChallengeSubmission, error)
	Review(ctx context.Context, adminID string, adminRole models.UserRole, submissionID string, cmd workflow.Command, note string) (*models.ChallengeSubmission, error)
}

type challengeService struct {
	challengeRepo repositories.ChallengeRepository
	badgeRepo     repositories.BadgeRepository
	auditRepo     repositories.AuditLogRepository
	dispatcher    notify.Dispatcher
}

func NewChallengeService(
	challengeRepo repositories.ChallengeRepository,
	badgeRepo repositories.BadgeRepository,
	auditRepo repositories.AuditLogRepository,
	dispatcher notify.Dispatcher,
) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		badgeRepo:     badgeRepo,
		auditRepo:     auditRepo,
		dispatcher:    dispatcher,
	}
}

// CreateChallenge - публикация нового задания админом
func (s *challengeService) CreateChallenge(req *dto.CreateChallengeRequest) (*models.SkillChallenge, error) {
	challenge := &models.SkillChallenge{
		Title:     req.Title,
		Prompt:    req.Prompt,
		BadgeName: req.BadgeName,
		Active:    true,
	}
	if err := s.challengeRepo.CreateChallenge(challenge); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return challenge, nil
}

func (s *challengeService) ListActive() ([]models.SkillChallenge, error) {
	challenges, err := s.challengeRepo.ListActiveChallenges()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return challenges, nil
}

// Submit - решение студента. Решение рождается в pending_review
// и ждет модерации админом.
func (s *challengeService) Submit(studentID, challengeID string, req *dto.SubmitChallengeRequest) (*models.ChallengeSubmission, error) {
	challenge, err := s.challengeRepo.FindChallengeByID(challengeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrChallengeNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !challenge.Active {
		return nil, apperrors.ErrNotFound(repositories.ErrChallengeNotFound)
	}

	submission := &models.ChallengeSubmission{
		ChallengeID: challengeID,
		StudentID:   studentID,
		Answer:      req.Answer,
		Status:      models.SubmissionStatusPendingReview,
	}
	if err := s.challengeRepo.CreateSubmission(submission); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return submission, nil
}

func (s *challengeService) ListMySubmissions(studentID string) ([]models.ChallengeSubmission, error) {
	subs, err := s.challengeRepo.ListSubmissionsByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subs, nil
}

// ListPendingSubmissions - очередь модерации решений для админа
func (s *challengeService) ListPendingSubmissions() ([]models.ChallengeSubmission, error) {
	subs, err := s.challengeRepo.ListSubmissionsByStatus(models.SubmissionStatusPendingReview)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subs, nil
}

// Review - approve/reject решения админом.
// Одобрение выдает студенту бейдж задания и шлет уведомление.
// Повторная модерация того же решения блокируется машиной переходов,
// поэтому бейдж за одно решение выдается не больше одного раза.
func (s *challengeService) Review(ctx context.Context, adminID string, adminRole models.UserRole, submissionID string, cmd workflow.Command, note string) (*models.ChallengeSubmission, error) {
	submission, err := s.challengeRepo.FindSubmissionByID(submissionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubmissionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	next, err := workflow.ChallengeSubmission.Apply(workflow.State(submission.Status), cmd, adminRole, "")
	if err != nil {
		return nil, err
	}

	previous := submission.Status
	submission.Status = models.SubmissionStatus(next)
	submission.ReviewNote = note

	if err := s.challengeRepo.UpdateSubmission(submission); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordAudit(s.auditRepo, adminID, adminRole, "challenge_submission."+string(cmd), "challenge_submission", submission.ID,
		map[string]interface{}{"from": previous, "to": submission.Status, "challenge_id": submission.ChallengeID})

	if cmd == workflow.SubmissionApprove {
		s.awardChallengeBadge(ctx, adminID, submission)
	}

	return submission, nil
}

// awardChallengeBadge выдает бейдж задания после одобрения решения.
// Сбой выдачи не откатывает модерацию, только логируется.
func (s *challengeService) awardChallengeBadge(ctx context.Context, adminID string, submission *models.ChallengeSubmission) {
	challenge, err := s.challengeRepo.FindChallengeByID(submission.ChallengeID)
	if err != nil {
		logger.Error("failed to load challenge for badge award",
			"error", err.Error(), "challenge_id", submission.ChallengeID)
		return
	}

	badge := &models.Badge{
		StudentID: submission.StudentID,
		Name:      challenge.BadgeName,
		AwardedBy: adminID,
		Note:      "Awarded for completing challenge: " + challenge.Title,
	}
	if err := s.badgeRepo.Create(badge); err != nil {
		logger.Error("failed to award challenge badge",
			"error", err.Error(), "student_id", submission.StudentID)
		return
	}

	s.dispatcher.Dispatch(ctx, notify.BadgeAwarded(submission.StudentID, challenge.BadgeName))
}
