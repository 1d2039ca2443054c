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

type challengeFixture struct {
	svc        ChallengeService
	badgeRepo  *fakeBadgeRepo
	dispatcher *fakeDispatcher
	challenge  *models.SkillChallenge
}

func newChallengeFixture(t *testing.T) *challengeFixture {
	t.Helper()
	challengeRepo := newFakeChallengeRepo()
	badgeRepo := newFakeBadgeRepo()
	dispatcher := newFakeDispatcher()
	svc := NewChallengeService(challengeRepo, badgeRepo, newFakeAuditRepo(), dispatcher)

	challenge, err := svc.CreateChallenge(&dto.CreateChallengeRequest{
		Title:     "Build a REST API",
		Prompt:    "Implement a small CRUD service",
		BadgeName: "API Builder",
	})
	require.NoError(t, err)

	return &challengeFixture{
		svc:        svc,
		badgeRepo:  badgeRepo,
		dispatcher: dispatcher,
		challenge:  challenge,
	}
}

func TestChallengeSubmissionStartsPendingReview(t *testing.T) {
	f := newChallengeFixture(t)

	sub, err := f.svc.Submit("stu-1", f.challenge.ID, &dto.SubmitChallengeRequest{Answer: "repo link"})
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionStatusPendingReview, sub.Status)
}

func TestChallengeApproveAwardsBadgeOnce(t *testing.T) {
	f := newChallengeFixture(t)
	sub, err := f.svc.Submit("stu-1", f.challenge.ID, &dto.SubmitChallengeRequest{Answer: "repo link"})
	require.NoError(t, err)
	ctx := context.Background()

	approved, err := f.svc.Review(ctx, "adm-1", models.UserRoleAdmin, sub.ID, workflow.SubmissionApprove, "good work")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved, approved.Status)
	assert.Equal(t, "good work", approved.ReviewNote)

	badges, err := f.badgeRepo.ListByStudent("stu-1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "API Builder", badges[0].Name)
	assert.Len(t, f.dispatcher.byType(notify.TypeBadgeAwarded), 1)

	// Повторная модерация блокируется, второй бейдж не выдается
	_, err = f.svc.Review(ctx, "adm-1", models.UserRoleAdmin, sub.ID, workflow.SubmissionApprove, "again")
	assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)

	badges, err = f.badgeRepo.ListByStudent("stu-1")
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestChallengeRejectAwardsNothing(t *testing.T) {
	f := newChallengeFixture(t)
	sub, err := f.svc.Submit("stu-1", f.challenge.ID, &dto.SubmitChallengeRequest{Answer: "repo link"})
	require.NoError(t, err)

	rejected, err := f.svc.Review(context.Background(), "adm-1", models.UserRoleAdmin, sub.ID, workflow.SubmissionReject, "incomplete")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusRejected, rejected.Status)

	badges, err := f.badgeRepo.ListByStudent("stu-1")
	require.NoError(t, err)
	assert.Empty(t, badges)
	assert.Empty(t, f.dispatcher.dispatched)
}

func TestChallengeReviewByEmployerDenied(t *testing.T) {
	f := newChallengeFixture(t)
	sub, err := f.svc.Submit("stu-1", f.challenge.ID, &dto.SubmitChallengeRequest{Answer: "repo link"})
	require.NoError(t, err)

	_, err = f.svc.Review(context.Background(), "emp-1", models.UserRoleEmployer, sub.ID, workflow.SubmissionApprove, "")
	assertAppErrorCode(t, err, apperrors.CodeUnauthorized)
}

func TestSubmitToInactiveChallengeDenied(t *testing.T) {
	f := newChallengeFixture(t)
	f.challenge.Active = false

	_, err := f.svc.Submit("stu-1", f.challenge.ID, &dto.SubmitChallengeRequest{Answer: "repo link"})
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}
