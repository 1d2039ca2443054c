package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/middleware"
	"recruitportal/internal/models"
	"recruitportal/internal/services"
	"recruitportal/internal/services/dto"
)

type BadgeHandler struct {
	*BaseHandler
	badgeService services.BadgeService
}

func NewBadgeHandler(base *BaseHandler, badgeService services.BadgeService) *BadgeHandler {
	return &BadgeHandler{
		BaseHandler:  base,
		badgeService: badgeService,
	}
}

func (h *BadgeHandler) RegisterRoutes(r *gin.RouterGroup) {
	student := r.Group("/badges")
	student.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleStudent))
	{
		student.GET("/mine", h.ListMine)
	}

	employer := r.Group("/employer")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.POST("/badges", h.Award)
		employer.POST("/messages", h.SendMessage)
	}
}

func (h *BadgeHandler) Award(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AwardBadgeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	badge, err := h.badgeService.Award(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, badge)
}

func (h *BadgeHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	badges, err := h.badgeService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

func (h *BadgeHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.badgeService.SendMessage(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Message queued for delivery"})
}
