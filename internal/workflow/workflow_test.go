package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitportal/internal/models"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

// assertAppErrorCode - хелпер: проверяет код AppError
func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	if assert.True(t, ok, "expected *AppError, got %T: %v", err, err) {
		assert.Equal(t, code, appErr.Code)
	}
}

// --- JobPosting ---

func TestJobPosting_ApproveFromPending(t *testing.T) {
	to, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusPending),
		workflow.JobPostingApprove,
		models.UserRoleAdmin, "",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.JobPostingStatusApproved), to)
}

func TestJobPosting_ApproveIsRepeatable(t *testing.T) {
	// Повторный approve уже одобренной вакансии - разрешенная no-op
	// перезапись (поведение портала сохранено намеренно)
	to, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusApproved),
		workflow.JobPostingApprove,
		models.UserRoleAdmin, "",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.JobPostingStatusApproved), to)
}

func TestJobPosting_ApproveNotReachableFromRejected(t *testing.T) {
	_, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusRejected),
		workflow.JobPostingApprove,
		models.UserRoleAdmin, "",
	)
	assert.Error(t, err)
	assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)
}

func TestJobPosting_RejectRequiresReason(t *testing.T) {
	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := workflow.JobPosting.Apply(
			workflow.State(models.JobPostingStatusPending),
			workflow.JobPostingReject,
			models.UserRoleAdmin, reason,
		)
		assert.Error(t, err, "reason %q must be rejected", reason)
		assertAppErrorCode(t, err, apperrors.CodeValidationFailed)
	}
}

func TestJobPosting_RejectWithReason(t *testing.T) {
	to, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusPending),
		workflow.JobPostingReject,
		models.UserRoleAdmin, "duplicate posting",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.JobPostingStatusRejected), to)
}

func TestJobPosting_RevokeRequiresReason(t *testing.T) {
	_, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusApproved),
		workflow.JobPostingRevoke,
		models.UserRoleAdmin, "",
	)
	assert.Error(t, err)
}

func TestJobPosting_RevokeReturnsToPending(t *testing.T) {
	to, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusApproved),
		workflow.JobPostingRevoke,
		models.UserRoleAdmin, "policy violation",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.JobPostingStatusPending), to)
}

func TestJobPosting_ModerationDeniedForOtherRoles(t *testing.T) {
	for _, role := range []models.UserRole{models.UserRoleStudent, models.UserRoleEmployer} {
		_, err := workflow.JobPosting.Apply(
			workflow.State(models.JobPostingStatusPending),
			workflow.JobPostingApprove,
			role, "",
		)
		assert.Error(t, err, "role %s must not moderate postings", role)
		assertAppErrorCode(t, err, apperrors.CodeUnauthorized)
	}
}

func TestJobPosting_CloseByEmployer(t *testing.T) {
	to, err := workflow.JobPosting.Apply(
		workflow.State(models.JobPostingStatusApproved),
		workflow.JobPostingClose,
		models.UserRoleEmployer, "",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.JobPostingStatusClosed), to)
}

// --- Application ---

func TestApplication_ScheduleInterviewRequiresDateTime(t *testing.T) {
	_, err := workflow.Application.Apply(
		workflow.State(models.ApplicationStatusPending),
		workflow.ApplicationScheduleInterview,
		models.UserRoleEmployer, "  ",
	)
	assert.Error(t, err)
	assertAppErrorCode(t, err, apperrors.CodeValidationFailed)
}

func TestApplication_ScheduleInterviewFromPendingAndReviewed(t *testing.T) {
	for _, from := range []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusReviewed,
	} {
		to, err := workflow.Application.Apply(
			workflow.State(from),
			workflow.ApplicationScheduleInterview,
			models.UserRoleEmployer, "2024-02-01T10:00",
		)
		assert.NoError(t, err)
		assert.Equal(t, workflow.State(models.ApplicationStatusInterviewScheduled), to)
	}
}

func TestApplication_FullPipeline(t *testing.T) {
	steps := []struct {
		from   models.ApplicationStatus
		cmd    workflow.Command
		reason string
		want   models.ApplicationStatus
	}{
		{models.ApplicationStatusPending, workflow.ApplicationMarkReviewed, "", models.ApplicationStatusReviewed},
		{models.ApplicationStatusReviewed, workflow.ApplicationScheduleInterview, "2024-02-01T10:00", models.ApplicationStatusInterviewScheduled},
		{models.ApplicationStatusInterviewScheduled, workflow.ApplicationMakeOffer, "", models.ApplicationStatusOfferMade},
		{models.ApplicationStatusOfferMade, workflow.ApplicationMarkHired, "", models.ApplicationStatusHired},
	}
	for _, s := range steps {
		to, err := workflow.Application.Apply(workflow.State(s.from), s.cmd, models.UserRoleEmployer, s.reason)
		assert.NoError(t, err, "%s -> %s", s.from, s.cmd)
		assert.Equal(t, workflow.State(s.want), to)
	}
}

func TestApplication_TerminalStatesHaveNoTransitions(t *testing.T) {
	commands := []workflow.Command{
		workflow.ApplicationMarkReviewed,
		workflow.ApplicationScheduleInterview,
		workflow.ApplicationMakeOffer,
		workflow.ApplicationMarkHired,
		workflow.ApplicationReject,
	}
	for _, terminal := range []models.ApplicationStatus{
		models.ApplicationStatusHired,
		models.ApplicationStatusRejected,
	} {
		for _, cmd := range commands {
			_, err := workflow.Application.Apply(
				workflow.State(terminal), cmd, models.UserRoleEmployer, "2024-02-01T10:00",
			)
			assert.Error(t, err, "terminal %s must reject %s", terminal, cmd)
		}
	}
}

func TestApplication_SkipLevelForbidden(t *testing.T) {
	// pending -> make_offer / mark_hired: пропуск этапов запрещен
	_, err := workflow.Application.Apply(
		workflow.State(models.ApplicationStatusPending),
		workflow.ApplicationMakeOffer,
		models.UserRoleEmployer, "",
	)
	assert.Error(t, err)

	_, err = workflow.Application.Apply(
		workflow.State(models.ApplicationStatusPending),
		workflow.ApplicationMarkHired,
		models.UserRoleEmployer, "",
	)
	assert.Error(t, err)
}

func TestApplication_AdminCannotRunEmployerPipeline(t *testing.T) {
	_, err := workflow.Application.Apply(
		workflow.State(models.ApplicationStatusPending),
		workflow.ApplicationReject,
		models.UserRoleAdmin, "",
	)
	assert.Error(t, err)
	assertAppErrorCode(t, err, apperrors.CodeUnauthorized)
}

// --- Ticket ---

func TestTicket_ResolveRequiresText(t *testing.T) {
	for _, text := range []string{"", " ", "\n\t  "} {
		_, err := workflow.Ticket.Apply(
			workflow.State(models.TicketStatusOpen),
			workflow.TicketResolve,
			models.UserRoleAdmin, text,
		)
		assert.Error(t, err, "resolution %q must be rejected", text)
	}
}

func TestTicket_ResolveAndEscalate(t *testing.T) {
	to, err := workflow.Ticket.Apply(
		workflow.State(models.TicketStatusOpen),
		workflow.TicketResolve,
		models.UserRoleAdmin, "fixed the account lock",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.TicketStatusResolved), to)

	to, err = workflow.Ticket.Apply(
		workflow.State(models.TicketStatusOpen),
		workflow.TicketEscalate,
		models.UserRoleAdmin, "needs registrar office",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.TicketStatusEscalated), to)
}

func TestTicket_ResolvedIsTerminal(t *testing.T) {
	_, err := workflow.Ticket.Apply(
		workflow.State(models.TicketStatusResolved),
		workflow.TicketEscalate,
		models.UserRoleAdmin, "text",
	)
	assert.Error(t, err)
}

// --- TranscriptRequest ---

func TestTranscript_AdminApproveAndReject(t *testing.T) {
	to, err := workflow.TranscriptRequest.Apply(
		workflow.State(models.TranscriptRequestStatusPending),
		workflow.TranscriptApprove,
		models.UserRoleAdmin, "",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.TranscriptRequestStatusApproved), to)

	to, err = workflow.TranscriptRequest.Apply(
		workflow.State(models.TranscriptRequestStatusPending),
		workflow.TranscriptReject,
		models.UserRoleAdmin, "",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.TranscriptRequestStatusRejected), to)
}

func TestTranscript_EmployerCannotModerate(t *testing.T) {
	_, err := workflow.TranscriptRequest.Apply(
		workflow.State(models.TranscriptRequestStatusPending),
		workflow.TranscriptApprove,
		models.UserRoleEmployer, "",
	)
	assert.Error(t, err)
	assertAppErrorCode(t, err, apperrors.CodeUnauthorized)
}

// --- ChallengeSubmission ---

func TestSubmission_Moderation(t *testing.T) {
	to, err := workflow.ChallengeSubmission.Apply(
		workflow.State(models.SubmissionStatusPendingReview),
		workflow.SubmissionApprove,
		models.UserRoleAdmin, "",
	)
	assert.NoError(t, err)
	assert.Equal(t, workflow.State(models.SubmissionStatusApproved), to)

	_, err = workflow.ChallengeSubmission.Apply(
		workflow.State(models.SubmissionStatusApproved),
		workflow.SubmissionApprove,
		models.UserRoleAdmin, "",
	)
	assert.Error(t, err, "double approve must fail")
}

// --- Commands ---

func TestCommandsForRole(t *testing.T) {
	assert.Equal(t,
		[]workflow.Command{workflow.ApplicationMarkReviewed, workflow.ApplicationReject, workflow.ApplicationScheduleInterview},
		workflow.Application.Commands(workflow.State(models.ApplicationStatusPending), models.UserRoleEmployer),
		"pending application: all three employer commands, alphabetical")

	assert.Equal(t,
		[]workflow.Command{workflow.JobPostingApprove, workflow.JobPostingReject},
		workflow.JobPosting.Commands(workflow.State(models.JobPostingStatusPending), models.UserRoleAdmin))

	assert.Empty(t, workflow.Application.Commands(
		workflow.State(models.ApplicationStatusPending), models.UserRoleStudent),
		"student has no pipeline commands")

	assert.Empty(t, workflow.Application.Commands(
		workflow.State(models.ApplicationStatusHired), models.UserRoleEmployer),
		"terminal status has no outgoing commands")
}
