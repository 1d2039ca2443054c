package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/config"
	"recruitportal/internal/middleware"
	"recruitportal/internal/services"
	"recruitportal/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	limiter     *middleware.RedisLimiter
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, limiter *middleware.RedisLimiter) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		limiter:     limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	cfg := config.GetConfig()
	loginLimit := middleware.LoginRateLimit(
		h.limiter,
		cfg.RateLimit.LoginAttempts,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", loginLimit, h.Login)
	}

	me := r.Group("/auth")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.Me)
	}
}

// Register - публичная регистрация студента или работодателя
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}

// Login - выпуск access token с ролью в claims
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me - профиль текущей сессии
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
