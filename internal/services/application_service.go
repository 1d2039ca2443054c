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

type ApplicationService interface {
	Apply(applicantID string, req *dto.ApplyRequest) (*models.Application, error)
	ListMine(applicantID string) ([]models.Application, error)
	ListByPosting(employerID, postingID string) ([]dto.ApplicationWithActions, error)
	ListInterviews() ([]models.Application, error)
	Transition(ctx context.Context, actorID string, actorRole models.UserRole, applicationID string, cmd workflow.Command, interviewDateTime string) (*models.Application, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	postingRepo     repositories.JobPostingRepository
	auditRepo       repositories.AuditLogRepository
	dispatcher      notify.Dispatcher
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	postingRepo repositories.JobPostingRepository,
	auditRepo repositories.AuditLogRepository,
	dispatcher notify.Dispatcher,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		auditRepo:       auditRepo,
		dispatcher:      dispatcher,
	}
}

// Apply - отклик студента на вакансию.
// Откликнуться можно только на одобренную вакансию и только один раз.
func (s *applicationService) Apply(applicantID string, req *dto.ApplyRequest) (*models.Application, error) {
	posting, err := s.postingRepo.FindByID(req.JobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.Status != models.JobPostingStatusApproved {
		return nil, apperrors.ErrPostingNotApproved
	}

	exists, err := s.applicationRepo.ExistsForApplicant(req.JobPostingID, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		ApplicantID:  applicantID,
		JobPostingID: req.JobPostingID,
		Status:       models.ApplicationStatusPending,
		CoverNote:    req.CoverNote,
	}
	if err := s.applicationRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationService) ListMine(applicantID string) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListByPosting - отклики на вакансию для работодателя-владельца.
// К каждому отклику прикладывается список команд конвейера, доступных
// из его текущего статуса (для терминальных статусов список пуст).
func (s *applicationService) ListByPosting(employerID, postingID string) ([]dto.ApplicationWithActions, error) {
	posting, err := s.postingRepo.FindByID(postingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.EmployerID != employerID {
		return nil, apperrors.ErrNotOwner
	}

	apps, err := s.applicationRepo.ListByPosting(postingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ApplicationWithActions, 0, len(apps))
	for _, app := range apps {
		cmds := workflow.Application.Commands(workflow.State(app.Status), models.UserRoleEmployer)
		actions := make([]string, 0, len(cmds))
		for _, cmd := range cmds {
			actions = append(actions, string(cmd))
		}
		result = append(result, dto.ApplicationWithActions{
			Application:      app,
			AvailableActions: actions,
		})
	}
	return result, nil
}

// ListInterviews - надзор админа за назначенными интервью
func (s *applicationService) ListInterviews() ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByStatus(models.ApplicationStatusInterviewScheduled)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// Transition - переход отклика по конвейеру найма.
// Все команды выполняет работодатель-владелец вакансии отклика.
// Для schedule_interview третий аргумент - datetime интервью, для
// остальных команд он игнорируется.
//
// Side effects после успешной записи:
//   - schedule_interview / make_offer / mark_hired: уведомление кандидату
//     (fire-and-forget, на результат перехода не влияет);
//   - mark_hired: вакансия закрывается, остальные отклики не трогаются.
func (s *applicationService) Transition(ctx context.Context, actorID string, actorRole models.UserRole, applicationID string, cmd workflow.Command, interviewDateTime string) (*models.Application, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	posting, err := s.postingRepo.FindByID(app.JobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.EmployerID != actorID {
		return nil, apperrors.ErrNotOwner
	}

	next, err := workflow.Application.Apply(workflow.State(app.Status), cmd, actorRole, interviewDateTime)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	app.Status = models.ApplicationStatus(next)
	if cmd == workflow.ApplicationScheduleInterview {
		app.InterviewDate = interviewDateTime
	}

	if err := s.applicationRepo.Update(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if cmd == workflow.ApplicationMarkHired {
		s.closePostingOnHire(posting, actorRole)
	}

	recordAudit(s.auditRepo, actorID, actorRole, "application."+string(cmd), "application", app.ID,
		map[string]interface{}{"from": previous, "to": app.Status, "job_posting_id": app.JobPostingID})

	switch cmd {
	case workflow.ApplicationScheduleInterview:
		s.dispatcher.Dispatch(ctx, notify.InterviewScheduled(app.ApplicantID, app.ID, interviewDateTime))
	case workflow.ApplicationMakeOffer:
		s.dispatcher.Dispatch(ctx, notify.OfferMade(app.ApplicantID, app.ID))
	case workflow.ApplicationMarkHired:
		s.dispatcher.Dispatch(ctx, notify.Hired(app.ApplicantID, app.ID))
	}

	return app, nil
}

// closePostingOnHire закрывает вакансию после найма кандидата.
// Вакансия к этому моменту может быть уже закрыта вручную, тогда
// переход невозможен и ничего не делаем.
func (s *applicationService) closePostingOnHire(posting *models.JobPosting, employerRole models.UserRole) {
	next, err := workflow.JobPosting.Apply(workflow.State(posting.Status), workflow.JobPostingClose, employerRole, "")
	if err != nil {
		return
	}
	posting.Status = models.JobPostingStatus(next)
	if err := s.postingRepo.Update(posting); err != nil {
		// Наем уже записан, закрытие вакансии доберет воркер по дедлайну
		// либо работодатель вручную
		logger.Error("failed to close job posting after hire",
			"error", err.Error(), "job_posting_id", posting.ID)
	}
}
