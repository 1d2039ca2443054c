package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitportal/internal/models"
	"recruitportal/internal/notify"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

type applicationFixture struct {
	svc         ApplicationService
	appRepo     *fakeApplicationRepo
	postingRepo *fakePostingRepo
	auditRepo   *fakeAuditRepo
	dispatcher  *fakeDispatcher
	posting     *models.JobPosting
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	appRepo := newFakeApplicationRepo()
	postingRepo := newFakePostingRepo()
	auditRepo := newFakeAuditRepo()
	dispatcher := newFakeDispatcher()

	posting := &models.JobPosting{
		EmployerID: "emp-1",
		Title:      "Go Developer",
		Company:    "Acme",
		Status:     models.JobPostingStatusApproved,
	}
	require.NoError(t, postingRepo.Create(posting))

	return &applicationFixture{
		svc:         NewApplicationService(appRepo, postingRepo, auditRepo, dispatcher),
		appRepo:     appRepo,
		postingRepo: postingRepo,
		auditRepo:   auditRepo,
		dispatcher:  dispatcher,
		posting:     posting,
	}
}

func (f *applicationFixture) apply(t *testing.T, applicantID string) *models.Application {
	t.Helper()
	app, err := f.svc.Apply(applicantID, &dto.ApplyRequest{JobPostingID: f.posting.ID})
	require.NoError(t, err)
	return app
}

func TestApplyToApprovedPosting(t *testing.T) {
	f := newApplicationFixture(t)

	app := f.apply(t, "stu-1")
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
}

func TestApplyToPendingPostingDenied(t *testing.T) {
	f := newApplicationFixture(t)
	f.posting.Status = models.JobPostingStatusPending

	_, err := f.svc.Apply("stu-1", &dto.ApplyRequest{JobPostingID: f.posting.ID})
	assertAppErrorCode(t, err, apperrors.CodeInvalidStatus)
}

func TestApplyTwiceDenied(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t, "stu-1")

	_, err := f.svc.Apply("stu-1", &dto.ApplyRequest{JobPostingID: f.posting.ID})
	assertAppErrorCode(t, err, apperrors.CodeAlreadyExists)

	// Другой студент откликнуться может
	_, err = f.svc.Apply("stu-2", &dto.ApplyRequest{JobPostingID: f.posting.ID})
	require.NoError(t, err)
}

func TestScheduleInterviewSetsDateAndNotifies(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")

	updated, err := f.svc.Transition(context.Background(), "emp-1", models.UserRoleEmployer,
		app.ID, workflow.ApplicationScheduleInterview, "2026-09-15T10:00")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusInterviewScheduled, updated.Status)
	assert.Equal(t, "2026-09-15T10:00", updated.InterviewDate)

	scheduled := f.dispatcher.byType(notify.TypeInterviewScheduled)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "stu-1", scheduled[0].UserID)
	assert.Equal(t, "2026-09-15T10:00", scheduled[0].Data["interview_date"])
}

func TestScheduleInterviewWithoutDatetimeDenied(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")

	_, err := f.svc.Transition(context.Background(), "emp-1", models.UserRoleEmployer,
		app.ID, workflow.ApplicationScheduleInterview, "  ")
	assertAppErrorCode(t, err, apperrors.CodeValidationFailed)

	stored, err := f.appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestTransitionByNonOwnerDenied(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")

	_, err := f.svc.Transition(context.Background(), "emp-2", models.UserRoleEmployer,
		app.ID, workflow.ApplicationMarkReviewed, "")
	assertAppErrorCode(t, err, apperrors.CodeForbidden)
}

func TestHiredClosesPostingAndNotifies(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")
	ctx := context.Background()

	steps := []struct {
		cmd    workflow.Command
		reason string
	}{
		{workflow.ApplicationMarkReviewed, ""},
		{workflow.ApplicationScheduleInterview, "2026-09-15T10:00"},
		{workflow.ApplicationMakeOffer, ""},
		{workflow.ApplicationMarkHired, ""},
	}
	for _, step := range steps {
		_, err := f.svc.Transition(ctx, "emp-1", models.UserRoleEmployer, app.ID, step.cmd, step.reason)
		require.NoError(t, err, "command %s", step.cmd)
	}

	stored, err := f.appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, stored.Status)

	// Наем закрывает вакансию
	posting, err := f.postingRepo.FindByID(f.posting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobPostingStatusClosed, posting.Status)

	assert.Len(t, f.dispatcher.byType(notify.TypeInterviewScheduled), 1)
	assert.Len(t, f.dispatcher.byType(notify.TypeOfferMade), 1)
	assert.Len(t, f.dispatcher.byType(notify.TypeHired), 1)
	assert.Len(t, f.auditRepo.entries, 4)
}

func TestRejectOnlyFromPending(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")
	ctx := context.Background()

	_, err := f.svc.Transition(ctx, "emp-1", models.UserRoleEmployer, app.ID, workflow.ApplicationMarkReviewed, "")
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, "emp-1", models.UserRoleEmployer, app.ID, workflow.ApplicationReject, "")
	assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)
}

func TestTerminalApplicationRejectsFurtherCommands(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")
	ctx := context.Background()

	_, err := f.svc.Transition(ctx, "emp-1", models.UserRoleEmployer, app.ID, workflow.ApplicationReject, "")
	require.NoError(t, err)

	_, err = f.svc.Transition(ctx, "emp-1", models.UserRoleEmployer, app.ID, workflow.ApplicationMarkReviewed, "")
	assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)
}

func TestListByPostingRequiresOwnership(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t, "stu-1")

	apps, err := f.svc.ListByPosting("emp-1", f.posting.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = f.svc.ListByPosting("emp-2", f.posting.ID)
	assertAppErrorCode(t, err, apperrors.CodeForbidden)
}

func TestListByPostingExposesAvailableActions(t *testing.T) {
	f := newApplicationFixture(t)
	app := f.apply(t, "stu-1")

	apps, err := f.svc.ListByPosting("emp-1", f.posting.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t,
		[]string{"mark_reviewed", "reject", "schedule_interview"},
		apps[0].AvailableActions,
		"pending application offers the full set of employer commands")

	ctx := context.Background()
	_, err = f.svc.Transition(ctx, "emp-1", models.UserRoleEmployer, app.ID, workflow.ApplicationReject, "")
	require.NoError(t, err)

	apps, err = f.svc.ListByPosting("emp-1", f.posting.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Empty(t, apps[0].AvailableActions, "terminal application has no actions left")
}
