package workflow

import "recruitportal/internal/models"

// Граф тикета поддержки (только админ):
//
//	open ──resolve(text)──► resolved
//	open ──escalate(text)──► escalated
//
// Оба перехода требуют непустой текст резолюции/причины.
const (
	TicketResolve  Command = "resolve"
	TicketEscalate Command = "escalate"
)

var Ticket = NewMachine("ticket",
	Rule{From: State(models.TicketStatusOpen), Command: TicketResolve, To: State(models.TicketStatusResolved), Role: models.UserRoleAdmin, RequiresReason: true},
	Rule{From: State(models.TicketStatusOpen), Command: TicketEscalate, To: State(models.TicketStatusEscalated), Role: models.UserRoleAdmin, RequiresReason: true},
)
