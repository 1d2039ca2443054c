package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/middleware"
	"recruitportal/internal/models"
	"recruitportal/internal/services"
	"recruitportal/internal/services/dto"
)

type TranscriptHandler struct {
	*BaseHandler
	transcriptService services.TranscriptService
}

func NewTranscriptHandler(base *BaseHandler, transcriptService services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{
		BaseHandler:       base,
		transcriptService: transcriptService,
	}
}

func (h *TranscriptHandler) RegisterRoutes(r *gin.RouterGroup) {
	employer := r.Group("/employer/transcript-requests")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.POST("", h.Request)
	}

	admin := r.Group("/admin/transcript-requests")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:requestId/approve", h.Approve)
		admin.POST("/:requestId/reject", h.Reject)
	}
}

// Request - запрос транскрипта кандидата. Повторный запрос
// по тому же кандидату возвращает существующий (200, не 201).
func (h *TranscriptHandler) Request(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RequestTranscriptRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.transcriptService.Request(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// List - запросы транскриптов, фильтр ?status=pending|approved|rejected
func (h *TranscriptHandler) List(c *gin.Context) {
	requests, err := h.transcriptService.List(models.TranscriptRequestStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript_requests": requests})
}

func (h *TranscriptHandler) Approve(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApproveTranscriptRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.transcriptService.Approve(c.Request.Context(), userID, middleware.GetUserRole(c),
		c.Param("requestId"), req.TranscriptURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *TranscriptHandler) Reject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	request, err := h.transcriptService.Reject(userID, middleware.GetUserRole(c), c.Param("requestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
