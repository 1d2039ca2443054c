package workflow

import "recruitportal/internal/models"

// Граф модерации вакансии:
//
//	pending ──approve──► approved ──revoke(reason)──► pending
//	   │                     │
//	   │                     ├──approve──► approved (повторное одобрение,
//	   │                     │             перезапись без смены статуса)
//	   │                     └──close──► closed (работодатель-владелец)
//	   └──reject(reason)──► rejected
//
// Повторный approve уже одобренной вакансии намеренно разрешен:
// портал ведет себя так же (no-op перезапись, причина очищается).
const (
	JobPostingApprove Command = "approve"
	JobPostingReject  Command = "reject"
	JobPostingRevoke  Command = "revoke"
	JobPostingClose   Command = "close"
)

var JobPosting = NewMachine("job_posting",
	Rule{From: State(models.JobPostingStatusPending), Command: JobPostingApprove, To: State(models.JobPostingStatusApproved), Role: models.UserRoleAdmin},
	Rule{From: State(models.JobPostingStatusApproved), Command: JobPostingApprove, To: State(models.JobPostingStatusApproved), Role: models.UserRoleAdmin},
	Rule{From: State(models.JobPostingStatusPending), Command: JobPostingReject, To: State(models.JobPostingStatusRejected), Role: models.UserRoleAdmin, RequiresReason: true},
	Rule{From: State(models.JobPostingStatusApproved), Command: JobPostingRevoke, To: State(models.JobPostingStatusPending), Role: models.UserRoleAdmin, RequiresReason: true},
	Rule{From: State(models.JobPostingStatusApproved), Command: JobPostingClose, To: State(models.JobPostingStatusClosed), Role: models.UserRoleEmployer},
)
