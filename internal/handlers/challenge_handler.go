package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/middleware"
	"recruitportal/internal/models"
	"recruitportal/internal/services"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
)

type ChallengeHandler struct {
	*BaseHandler
	challengeService services.ChallengeService
}

func NewChallengeHandler(base *BaseHandler, challengeService services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		BaseHandler:      base,
		challengeService: challengeService,
	}
}

func (h *ChallengeHandler) RegisterRoutes(r *gin.RouterGroup) {
	student := r.Group("/challenges")
	student.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleStudent))
	{
		student.GET("", h.ListActive)
		student.POST("/:challengeId/submissions", h.Submit)
		student.GET("/submissions/mine", h.ListMySubmissions)
	}

	admin := r.Group("/admin/challenges")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateChallenge)
		admin.GET("/submissions/pending", h.ListPendingSubmissions)
		admin.POST("/submissions/:submissionId/approve", h.review(workflow.SubmissionApprove))
		admin.POST("/submissions/:submissionId/reject", h.review(workflow.SubmissionReject))
	}
}

func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	challenge, err := h.challengeService.CreateChallenge(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

func (h *ChallengeHandler) ListActive(c *gin.Context) {
	challenges, err := h.challengeService.ListActive()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

func (h *ChallengeHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitChallengeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	submission, err := h.challengeService.Submit(userID, c.Param("challengeId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

func (h *ChallengeHandler) ListMySubmissions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	submissions, err := h.challengeService.ListMySubmissions(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h *ChallengeHandler) ListPendingSubmissions(c *gin.Context) {
	submissions, err := h.challengeService.ListPendingSubmissions()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h *ChallengeHandler) review(cmd workflow.Command) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		// Заметка ревьюера необязательна, пустое тело допустимо
		var req dto.ReviewSubmissionRequest
		if c.Request.ContentLength > 0 {
			if !h.BindAndValidate_JSON(c, &req) {
				return
			}
		}

		submission, err := h.challengeService.Review(c.Request.Context(), userID, middleware.GetUserRole(c),
			c.Param("submissionId"), cmd, req.Note)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, submission)
	}
}
