package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"recruitportal/database"
	"recruitportal/internal/config"
	"recruitportal/internal/email"
	"recruitportal/internal/handlers"
	"recruitportal/internal/logger"
	"recruitportal/internal/middleware"
	"recruitportal/internal/notify"
	"recruitportal/internal/repositories"
	"recruitportal/internal/routes"
	"recruitportal/internal/services"
	"recruitportal/internal/validator"
	"recruitportal/internal/workers"
	"recruitportal/pkg/apperrors"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, worker := SetupRouter(cfg, gormDB)

	if err := worker.Start(cfg.Maintenance.CronSpec); err != nil {
		logger.Fatal("Failed to start maintenance worker", "error", err)
	}
	defer worker.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *workers.MaintenanceWorker) {
	serviceContainer, worker := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, worker
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) (*services.ServiceContainer, *workers.MaintenanceWorker) {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &email.MockProvider{}
		logger.Warn("Email disabled in config, using mock provider")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	postingRepo := repositories.NewJobPostingRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	ticketRepo := repositories.NewTicketRepository(gormDB)
	transcriptRepo := repositories.NewTranscriptRequestRepository(gormDB)
	challengeRepo := repositories.NewChallengeRepository(gormDB)
	badgeRepo := repositories.NewBadgeRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	auditRepo := repositories.NewAuditLogRepository(gormDB)

	dispatcher := notify.NewDispatcher(
		notificationRepo,
		userRepo,
		emailProvider,
		time.Duration(cfg.Notify.DispatchTimeoutSeconds)*time.Second,
	)

	container := &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		JobPostingService:   services.NewJobPostingService(postingRepo, auditRepo),
		ApplicationService:  services.NewApplicationService(applicationRepo, postingRepo, auditRepo, dispatcher),
		CandidateService:    services.NewCandidateService(userRepo),
		TicketService:       services.NewTicketService(ticketRepo, userRepo, auditRepo),
		TranscriptService:   services.NewTranscriptService(transcriptRepo, userRepo, auditRepo, dispatcher),
		ChallengeService:    services.NewChallengeService(challengeRepo, badgeRepo, auditRepo, dispatcher),
		BadgeService:        services.NewBadgeService(badgeRepo, userRepo, dispatcher),
		AnalyticsService:    services.NewAnalyticsService(userRepo, postingRepo, applicationRepo, ticketRepo, auditRepo),
		NotificationService: services.NewNotificationService(notificationRepo),
	}

	worker := workers.NewMaintenanceWorker(postingRepo, notificationRepo, cfg.Maintenance.RetentionDays)

	return container, worker
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	limiter := initializeRateLimiter(cfg)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService, limiter),
		JobPostingHandler:   handlers.NewJobPostingHandler(baseHandler, container.JobPostingService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		CandidateHandler:    handlers.NewCandidateHandler(baseHandler, container.CandidateService),
		TicketHandler:       handlers.NewTicketHandler(baseHandler, container.TicketService),
		TranscriptHandler:   handlers.NewTranscriptHandler(baseHandler, container.TranscriptService),
		ChallengeHandler:    handlers.NewChallengeHandler(baseHandler, container.ChallengeService),
		BadgeHandler:        handlers.NewBadgeHandler(baseHandler, container.BadgeService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, container.AnalyticsService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
	}
}

// initializeRateLimiter поднимает Redis для лимитера логина.
// Без Redis портал работает, лимитер просто отключен.
func initializeRateLimiter(cfg *config.Config) *middleware.RedisLimiter {
	if cfg.Redis.URL == "" {
		logger.Warn("Redis URL not set, login rate limiting disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid Redis URL, login rate limiting disabled", "error", err.Error())
		return nil
	}

	client := redis.NewClient(opts)
	logger.Info("Redis rate limiter initialized", "addr", opts.Addr)
	return middleware.NewRedisLimiter(client)
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": gin.H{
			"code":    apperrors.CodeInvalidOperation,
			"message": "Method not allowed",
		}})
	})
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
