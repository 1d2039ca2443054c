package workflow

import "recruitportal/internal/models"

// Граф отклика (все команды - работодатель-владелец вакансии):
//
//	pending ──mark_reviewed──► reviewed
//	pending | reviewed ──schedule_interview(dt)──► interview_scheduled
//	interview_scheduled ──make_offer──► offer_made
//	offer_made ──mark_hired──► hired (side effect: вакансия закрывается)
//	pending ──reject──► rejected
//
// hired и rejected - терминальные.
// Для schedule_interview "причина" - это непустой interview datetime.
const (
	ApplicationMarkReviewed      Command = "mark_reviewed"
	ApplicationScheduleInterview Command = "schedule_interview"
	ApplicationMakeOffer         Command = "make_offer"
	ApplicationMarkHired         Command = "mark_hired"
	ApplicationReject            Command = "reject"
)

var Application = NewMachine("application",
	Rule{From: State(models.ApplicationStatusPending), Command: ApplicationMarkReviewed, To: State(models.ApplicationStatusReviewed), Role: models.UserRoleEmployer},
	Rule{From: State(models.ApplicationStatusPending), Command: ApplicationScheduleInterview, To: State(models.ApplicationStatusInterviewScheduled), Role: models.UserRoleEmployer, RequiresReason: true},
	Rule{From: State(models.ApplicationStatusReviewed), Command: ApplicationScheduleInterview, To: State(models.ApplicationStatusInterviewScheduled), Role: models.UserRoleEmployer, RequiresReason: true},
	Rule{From: State(models.ApplicationStatusInterviewScheduled), Command: ApplicationMakeOffer, To: State(models.ApplicationStatusOfferMade), Role: models.UserRoleEmployer},
	Rule{From: State(models.ApplicationStatusOfferMade), Command: ApplicationMarkHired, To: State(models.ApplicationStatusHired), Role: models.UserRoleEmployer},
	Rule{From: State(models.ApplicationStatusPending), Command: ApplicationReject, To: State(models.ApplicationStatusRejected), Role: models.UserRoleEmployer},
)
