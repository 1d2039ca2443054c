package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitportal/internal/models"
	"recruitportal/internal/notify"
	"recruitportal/internal/services/dto"
	"recruitportal/pkg/apperrors"
)

type transcriptFixture struct {
	svc            TranscriptService
	transcriptRepo *fakeTranscriptRepo
	dispatcher     *fakeDispatcher
}

func newTranscriptFixture(t *testing.T) *transcriptFixture {
	t.Helper()
	transcriptRepo := newFakeTranscriptRepo()
	userRepo := newFakeUserRepo()
	dispatcher := newFakeDispatcher()

	require.NoError(t, userRepo.Create(&models.User{
		BaseModel: models.BaseModel{ID: "stu-1"},
		Name:      "Student",
		Email:     "student@example.com",
		Role:      models.UserRoleStudent,
	}))
	require.NoError(t, userRepo.Create(&models.User{
		BaseModel: models.BaseModel{ID: "emp-1"},
		Name:      "Employer",
		Email:     "employer@example.com",
		Role:      models.UserRoleEmployer,
	}))

	return &transcriptFixture{
		svc:            NewTranscriptService(transcriptRepo, userRepo, newFakeAuditRepo(), dispatcher),
		transcriptRepo: transcriptRepo,
		dispatcher:     dispatcher,
	}
}

func TestTranscriptRequestIsIdempotent(t *testing.T) {
	f := newTranscriptFixture(t)

	first, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)
	assert.Equal(t, models.TranscriptRequestStatusPending, first.Status)

	// Повторный запрос возвращает тот же живой запрос без дубликата
	second, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.transcriptRepo.requests, 1)
}

func TestTranscriptRequestForNonStudentDenied(t *testing.T) {
	f := newTranscriptFixture(t)

	_, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "emp-1"})
	assertAppErrorCode(t, err, apperrors.CodeInvalidOperation)
}

func TestTranscriptApproveSetsURLAndNotifiesRequester(t *testing.T) {
	f := newTranscriptFixture(t)
	request, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)

	approved, err := f.svc.Approve(context.Background(), "adm-1", models.UserRoleAdmin,
		request.ID, "https://transcripts.example.com/stu-1.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.TranscriptRequestStatusApproved, approved.Status)
	assert.Equal(t, "https://transcripts.example.com/stu-1.pdf", approved.TranscriptURL)

	ready := f.dispatcher.byType(notify.TypeTranscriptReady)
	require.Len(t, ready, 1)
	assert.Equal(t, "emp-1", ready[0].UserID)
}

func TestTranscriptApprovedRequestStillBlocksNew(t *testing.T) {
	f := newTranscriptFixture(t)
	request, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), "adm-1", models.UserRoleAdmin, request.ID, "https://example.com/t.pdf")
	require.NoError(t, err)

	again, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)
	assert.Equal(t, request.ID, again.ID)
	assert.Len(t, f.transcriptRepo.requests, 1)
}

func TestTranscriptRejectAllowsNewRequest(t *testing.T) {
	f := newTranscriptFixture(t)
	request, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)

	rejected, err := f.svc.Reject("adm-1", models.UserRoleAdmin, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TranscriptRequestStatusRejected, rejected.Status)

	// rejected не считается живым, новый запрос создается
	fresh, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)
	assert.NotEqual(t, request.ID, fresh.ID)
	assert.Len(t, f.transcriptRepo.requests, 2)
}

func TestTranscriptDoubleRejectDenied(t *testing.T) {
	f := newTranscriptFixture(t)
	request, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)

	_, err = f.svc.Reject("adm-1", models.UserRoleAdmin, request.ID)
	require.NoError(t, err)

	_, err = f.svc.Reject("adm-1", models.UserRoleAdmin, request.ID)
	assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)
}

func TestTranscriptApproveByEmployerDenied(t *testing.T) {
	f := newTranscriptFixture(t)
	request, err := f.svc.Request("emp-1", &dto.RequestTranscriptRequest{ApplicantID: "stu-1"})
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), "emp-1", models.UserRoleEmployer, request.ID, "https://example.com/t.pdf")
	assertAppErrorCode(t, err, apperrors.CodeUnauthorized)
}
