package services

import (
	"context"

	"recruitportal/internal/models"
	"recruitportal/internal/notify"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

type TranscriptService interface {
	Request(employerID string, req *dto.RequestTranscriptRequest) (*models.TranscriptRequest, error)
	List(status models.TranscriptRequestStatus) ([]models.TranscriptRequest, error)
	Approve(ctx context.Context, adminID string, adminRole models.UserRole, requestID string, transcriptURL string) (*models.TranscriptRequest, error)
	Reject(adminID string, adminRole models.UserRole, requestID string) (*models.TranscriptRequest, error)
}

type transcriptService struct {
	transcriptRepo repositories.TranscriptRequestRepository
	userRepo       repositories.UserRepository
	auditRepo      repositories.AuditLogRepository
	dispatcher     notify.Dispatcher
}

func NewTranscriptService(
	transcriptRepo repositories.TranscriptRequestRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditLogRepository,
	dispatcher notify.Dispatcher,
) TranscriptService {
	return &transcriptService{
		transcriptRepo: transcriptRepo,
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		dispatcher:     dispatcher,
	}
}

// Request - запрос транскрипта кандидата работодателем.
// Идемпотентен: если по кандидату уже есть живой (pending или approved)
// запрос, возвращается он же, новая запись не создается. После reject
// запросить можно заново.
func (s *transcriptService) Request(employerID string, req *dto.RequestTranscriptRequest) (*models.TranscriptRequest, error) {
	applicant, err := s.userRepo.FindByID(req.ApplicantID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if applicant.Role != models.UserRoleStudent {
		return nil, apperrors.ErrInvalidUserRole
	}

	existing, err := s.transcriptRepo.FindLiveByApplicant(req.ApplicantID)
	if err == nil {
		return existing, nil
	}
	if !apperrors.Is(err, repositories.ErrTranscriptNotFound) {
		return nil, apperrors.InternalError(err)
	}

	request := &models.TranscriptRequest{
		ApplicantID: req.ApplicantID,
		RequestedBy: employerID,
		Status:      models.TranscriptRequestStatusPending,
	}
	if err := s.transcriptRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

// List - очередь запросов для админа, опционально по статусу
func (s *transcriptService) List(status models.TranscriptRequestStatus) ([]models.TranscriptRequest, error) {
	var (
		requests []models.TranscriptRequest
		err      error
	)
	if status == "" {
		requests, err = s.transcriptRepo.List()
	} else {
		requests, err = s.transcriptRepo.ListByStatus(status)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

// Approve - одобрение запроса админом с проставлением ссылки.
// Запросивший работодатель получает уведомление о готовности.
func (s *transcriptService) Approve(ctx context.Context, adminID string, adminRole models.UserRole, requestID string, transcriptURL string) (*models.TranscriptRequest, error) {
	request, err := s.findRequest(requestID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.TranscriptRequest.Apply(workflow.State(request.Status), workflow.TranscriptApprove, adminRole, "")
	if err != nil {
		return nil, err
	}

	previous := request.Status
	request.Status = models.TranscriptRequestStatus(next)
	request.TranscriptURL = transcriptURL

	if err := s.transcriptRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordAudit(s.auditRepo, adminID, adminRole, "transcript_request.approve", "transcript_request", request.ID,
		map[string]interface{}{"from": previous, "to": request.Status})

	s.dispatcher.Dispatch(ctx, notify.TranscriptReady(request.RequestedBy, request.ApplicantID))

	return request, nil
}

// Reject - отклонение запроса админом
func (s *transcriptService) Reject(adminID string, adminRole models.UserRole, requestID string) (*models.TranscriptRequest, error) {
	request, err := s.findRequest(requestID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.TranscriptRequest.Apply(workflow.State(request.Status), workflow.TranscriptReject, adminRole, "")
	if err != nil {
		return nil, err
	}

	previous := request.Status
	request.Status = models.TranscriptRequestStatus(next)

	if err := s.transcriptRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordAudit(s.auditRepo, adminID, adminRole, "transcript_request.reject", "transcript_request", request.ID,
		map[string]interface{}{"from": previous, "to": request.Status})

	return request, nil
}

func (s *transcriptService) findRequest(id string) (*models.TranscriptRequest, error) {
	request, err := s.transcriptRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTranscriptNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}
