// Package workers - фоновые задачи обслуживания портала.
package workers

import (
	"time"

	"github.com/robfig/cron/v3"

	"recruitportal/internal/logger"
	"recruitportal/internal/repositories"
)

// MaintenanceWorker периодически закрывает вакансии с истекшим
// дедлайном и подчищает старые прочитанные уведомления.
type MaintenanceWorker struct {
	postingRepo      repositories.JobPostingRepository
	notificationRepo repositories.NotificationRepository
	retention        time.Duration
	cron             *cron.Cron
}

func NewMaintenanceWorker(
	postingRepo repositories.JobPostingRepository,
	notificationRepo repositories.NotificationRepository,
	retentionDays int,
) *MaintenanceWorker {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &MaintenanceWorker{
		postingRepo:      postingRepo,
		notificationRepo: notificationRepo,
		retention:        time.Duration(retentionDays) * 24 * time.Hour,
		cron:             cron.New(),
	}
}

// Start запускает расписание и сразу выполняет первый проход.
// spec в формате robfig/cron, напр. "@every 6h".
func (w *MaintenanceWorker) Start(spec string) error {
	if _, err := w.cron.AddFunc(spec, w.runOnce); err != nil {
		return err
	}
	w.cron.Start()
	logger.Info("maintenance worker started", "spec", spec)

	go w.runOnce()
	return nil
}

func (w *MaintenanceWorker) Stop() {
	w.cron.Stop()
	logger.Info("maintenance worker stopped")
}

func (w *MaintenanceWorker) runOnce() {
	now := time.Now()

	closed, err := w.postingRepo.CloseExpired(now)
	if err != nil {
		logger.Error("maintenance: failed to close expired postings", "error", err.Error())
	} else if closed > 0 {
		logger.Info("maintenance: closed expired job postings", "count", closed)
	}

	deleted, err := w.notificationRepo.DeleteReadOlderThan(now.Add(-w.retention))
	if err != nil {
		logger.Error("maintenance: failed to delete old notifications", "error", err.Error())
	} else if deleted > 0 {
		logger.Info("maintenance: deleted old read notifications", "count", deleted)
	}
}
