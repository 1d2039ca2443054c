package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/handlers"
	"recruitportal/internal/logger"
)

// RegisterRoutes регистрирует все HTTP маршруты API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobPostingHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.CandidateHandler.RegisterRoutes(api)
		appHandlers.TicketHandler.RegisterRoutes(api)
		appHandlers.TranscriptHandler.RegisterRoutes(api)
		appHandlers.ChallengeHandler.RegisterRoutes(api)
		appHandlers.BadgeHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered", "base_path", "/api/v1")
}
