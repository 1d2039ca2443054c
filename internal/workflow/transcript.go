package workflow

import "recruitportal/internal/models"

// Граф запроса транскрипта:
//
//	pending ──approve──► approved (админ проставляет transcript_url)
//	pending ──reject──► rejected
//
// Создание запроса (none → pending) идет не через машину:
// состояние "none" - это отсутствие записи, идемпотентный guard
// живет в TranscriptService.
const (
	TranscriptApprove Command = "approve"
	TranscriptReject  Command = "reject"
)

var TranscriptRequest = NewMachine("transcript_request",
	Rule{From: State(models.TranscriptRequestStatusPending), Command: TranscriptApprove, To: State(models.TranscriptRequestStatusApproved), Role: models.UserRoleAdmin},
	Rule{From: State(models.TranscriptRequestStatusPending), Command: TranscriptReject, To: State(models.TranscriptRequestStatusRejected), Role: models.UserRoleAdmin},
)
