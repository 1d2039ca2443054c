package workflow

import "recruitportal/internal/models"

// Граф решения skill challenge (модерация - админ):
//
//	pending_review ──approve──► approved (side effect: выдается бейдж)
//	pending_review ──reject──► rejected
const (
	SubmissionApprove Command = "approve"
	SubmissionReject  Command = "reject"
)

var ChallengeSubmission = NewMachine("challenge_submission",
	Rule{From: State(models.SubmissionStatusPendingReview), Command: SubmissionApprove, To: State(models.SubmissionStatusApproved), Role: models.UserRoleAdmin},
	Rule{From: State(models.SubmissionStatusPendingReview), Command: SubmissionReject, To: State(models.SubmissionStatusRejected), Role: models.UserRoleAdmin},
)
