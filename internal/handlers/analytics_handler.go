package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/middleware"
	"recruitportal/internal/models"
	"recruitportal/internal/repositories"
	"recruitportal/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/analytics/overview", h.Overview)
		admin.GET("/audit-logs", h.AuditLogs)
	}
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsService.PlatformOverview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// AuditLogs - журнал переходов, фильтры ?entity_type= и ?actor_id=
func (h *AnalyticsHandler) AuditLogs(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	entries, total, err := h.analyticsService.AuditLogs(repositories.AuditLogFilter{
		EntityType: c.Query("entity_type"),
		ActorID:    c.Query("actor_id"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audit_logs": entries,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}
