package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"recruitportal/internal/logger"
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
)

// recordAudit пишет запись журнала после успешного перехода.
// Сбой записи журнала не откатывает сам переход, только логируется.
func recordAudit(
	repo repositories.AuditLogRepository,
	actorID string,
	actorRole models.UserRole,
	action string,
	entityType string,
	entityID string,
	detail map[string]interface{},
) {
	var detailJSON datatypes.JSON
	if detail != nil {
		raw, err := json.Marshal(detail)
		if err != nil {
			logger.Error("audit: failed to marshal detail", "error", err.Error(), "action", action)
		} else {
			detailJSON = datatypes.JSON(raw)
		}
	}

	entry := &models.AuditLog{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detailJSON,
	}

	if err := repo.Create(entry); err != nil {
		logger.Error("audit: failed to persist entry",
			"error", err.Error(), "action", action, "entity_id", entityID)
	}
}
