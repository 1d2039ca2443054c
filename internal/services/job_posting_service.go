package services

import (
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

type JobPostingService interface {
	Create(employerID string, req *dto.CreateJobPostingRequest) (*models.JobPosting, error)
	Update(employerID, postingID string, req *dto.UpdateJobPostingRequest) (*models.JobPosting, error)
	GetByID(id string) (*models.JobPosting, error)
	ListMine(employerID string) ([]models.JobPosting, error)
	ListApproved() ([]models.JobPosting, error)
	ListPending() ([]models.JobPosting, error)
	Moderate(adminID string, adminRole models.UserRole, postingID string, cmd workflow.Command, reason string) (*models.JobPosting, error)
	Close(employerID string, employerRole models.UserRole, postingID string) (*models.JobPosting, error)
}

type jobPostingService struct {
	postingRepo repositories.JobPostingRepository
	auditRepo   repositories.AuditLogRepository
}

func NewJobPostingService(
	postingRepo repositories.JobPostingRepository,
	auditRepo repositories.AuditLogRepository,
) JobPostingService {
	return &jobPostingService{
		postingRepo: postingRepo,
		auditRepo:   auditRepo,
	}
}

// Create - создание вакансии работодателем.
// Вакансия всегда рождается в pending: статус из тела запроса
// не принимается.
func (s *jobPostingService) Create(employerID string, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	posting := &models.JobPosting{
		EmployerID:  employerID,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		Deadline:    req.Deadline,
		Status:      models.JobPostingStatusPending,
	}

	if err := s.postingRepo.Create(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

// Update - правка вакансии работодателем-владельцем.
// Разрешена только пока вакансия не прошла модерацию (pending):
// одобренный текст меняется через revoke админом.
func (s *jobPostingService) Update(employerID, postingID string, req *dto.UpdateJobPostingRequest) (*models.JobPosting, error) {
	posting, err := s.findPosting(postingID)
	if err != nil {
		return nil, err
	}
	if posting.EmployerID != employerID {
		return nil, apperrors.ErrNotOwner
	}
	if posting.Status != models.JobPostingStatusPending {
		return nil, apperrors.ErrInvalidTransition("job_posting",
			"Only pending job postings can be edited")
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Company != nil {
		posting.Company = *req.Company
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.Location != nil {
		posting.Location = *req.Location
	}
	if req.Deadline != nil {
		posting.Deadline = req.Deadline
	}

	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func (s *jobPostingService) GetByID(id string) (*models.JobPosting, error) {
	return s.findPosting(id)
}

func (s *jobPostingService) ListMine(employerID string) ([]models.JobPosting, error) {
	postings, err := s.postingRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

// ListApproved - публичная лента для студентов
func (s *jobPostingService) ListApproved() ([]models.JobPosting, error) {
	postings, err := s.postingRepo.ListApproved()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

// ListPending - очередь модерации для админа
func (s *jobPostingService) ListPending() ([]models.JobPosting, error) {
	postings, err := s.postingRepo.ListByStatus(models.JobPostingStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

// Moderate - approve/reject/revoke вакансии админом.
// approve очищает сохраненную причину, reject/revoke записывают новую.
// При неуспешном переходе вакансия не меняется.
func (s *jobPostingService) Moderate(adminID string, adminRole models.UserRole, postingID string, cmd workflow.Command, reason string) (*models.JobPosting, error) {
	posting, err := s.findPosting(postingID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.JobPosting.Apply(workflow.State(posting.Status), cmd, adminRole, reason)
	if err != nil {
		return nil, err
	}

	previous := posting.Status
	posting.Status = models.JobPostingStatus(next)
	switch cmd {
	case workflow.JobPostingApprove:
		posting.ModerationReason = ""
	case workflow.JobPostingReject, workflow.JobPostingRevoke:
		posting.ModerationReason = reason
	}

	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordAudit(s.auditRepo, adminID, adminRole, "job_posting."+string(cmd), "job_posting", posting.ID,
		map[string]interface{}{"from": previous, "to": posting.Status, "reason": reason})

	return posting, nil
}

// Close - закрытие одобренной вакансии работодателем-владельцем
func (s *jobPostingService) Close(employerID string, employerRole models.UserRole, postingID string) (*models.JobPosting, error) {
	posting, err := s.findPosting(postingID)
	if err != nil {
		return nil, err
	}
	if posting.EmployerID != employerID {
		return nil, apperrors.ErrNotOwner
	}

	next, err := workflow.JobPosting.Apply(workflow.State(posting.Status), workflow.JobPostingClose, employerRole, "")
	if err != nil {
		return nil, err
	}

	previous := posting.Status
	posting.Status = models.JobPostingStatus(next)
	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordAudit(s.auditRepo, employerID, employerRole, "job_posting.close", "job_posting", posting.ID,
		map[string]interface{}{"from": previous, "to": posting.Status})

	return posting, nil
}

func (s *jobPostingService) findPosting(id string) (*models.JobPosting, error) {
	posting, err := s.postingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}
