// Package notify - fire-and-forget доставка уведомлений.
//
// Dispatch вызывается ПОСЛЕ коммита перехода состояния и никогда не
// влияет на его результат: at-most-once, без ретраев, без dead-letter.
// Ошибки доставки логируются и проглатываются.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"recruitportal/internal/email"
	"recruitportal/internal/logger"
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
)

// Request - один запрос на доставку уведомления
type Request struct {
	UserID  string
	Type    string
	Title   string
	Message string
	Data    map[string]interface{}
}

type Dispatcher interface {
	// Dispatch ставит уведомление на доставку и сразу возвращается.
	// Результат доставки для вызывающего кода не существует.
	Dispatch(ctx context.Context, req Request)
}

// typesMirroredToEmail - типы, которые дублируются письмом
var typesMirroredToEmail = map[string]bool{
	TypeInterviewScheduled: true,
	TypeOfferMade:          true,
	TypeHired:              true,
}

type dispatcher struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
	timeout          time.Duration
}

func NewDispatcher(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	timeout time.Duration,
) Dispatcher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &dispatcher{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
		timeout:          timeout,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, req Request) {
	// Контекст запроса к этому моменту может быть уже отменен,
	// доставка живет в своем собственном с ограничением по времени
	go d.deliver(req)
}

func (d *dispatcher) deliver(req Request) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	var dataJSON datatypes.JSON
	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			logger.CtxWithError(ctx, "notify: failed to marshal notification data", err, "type", req.Type)
		} else {
			dataJSON = datatypes.JSON(raw)
		}
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		Data:    dataJSON,
		IsRead:  false,
	}

	if err := d.notificationRepo.Create(notification); err != nil {
		logger.CtxWithError(ctx, "notify: failed to persist notification", err,
			"user_id", req.UserID, "type", req.Type)
		return
	}

	if d.emailProvider == nil || !typesMirroredToEmail[req.Type] {
		return
	}

	user, err := d.userRepo.FindByID(req.UserID)
	if err != nil {
		logger.CtxWithError(ctx, "notify: recipient lookup failed", err, "user_id", req.UserID)
		return
	}

	done := make(chan error, 1)
	go func() {
		done <- d.emailProvider.Send(user.Email, req.Title, req.Message)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.CtxWithError(ctx, "notify: email delivery failed", err,
				"user_id", req.UserID, "type", req.Type)
		}
	case <-ctx.Done():
		// Таймаут доставки считается Failed, но для вызывающего кода невидим
		logger.CtxWarn(ctx, "notify: email delivery timed out",
			"user_id", req.UserID, "type", req.Type, "timeout", d.timeout)
	}
}
