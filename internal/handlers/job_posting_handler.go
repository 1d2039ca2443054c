package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/middleware"
	"recruitportal/internal/models"
	"recruitportal/internal/services"
	"recruitportal/internal/services/dto"
	"recruitportal/internal/workflow"
	"recruitportal/pkg/apperrors"
)

type JobPostingHandler struct {
	*BaseHandler
	postingService services.JobPostingService
}

func NewJobPostingHandler(base *BaseHandler, postingService services.JobPostingService) *JobPostingHandler {
	return &JobPostingHandler{
		BaseHandler:    base,
		postingService: postingService,
	}
}

func (h *JobPostingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Лента одобренных вакансий - любой аутентифицированный пользователь
	public := r.Group("/job-postings")
	public.Use(middleware.AuthMiddleware())
	{
		public.GET("", h.ListApproved)
		public.GET("/:postingId", h.GetByID)
	}

	employer := r.Group("/employer/job-postings")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.POST("", h.Create)
		employer.GET("", h.ListMine)
		employer.PUT("/:postingId", h.Update)
		employer.POST("/:postingId/close", h.Close)
	}

	admin := r.Group("/admin/job-postings")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/pending", h.ListPending)
		admin.POST("/:postingId/approve", h.moderate(workflow.JobPostingApprove))
		admin.POST("/:postingId/reject", h.moderate(workflow.JobPostingReject))
		admin.POST("/:postingId/revoke", h.moderate(workflow.JobPostingRevoke))
	}
}

func (h *JobPostingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobPostingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	posting, err := h.postingService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, posting)
}

func (h *JobPostingHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobPostingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	posting, err := h.postingService.Update(userID, c.Param("postingId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posting)
}

func (h *JobPostingHandler) GetByID(c *gin.Context) {
	posting, err := h.postingService.GetByID(c.Param("postingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posting)
}

func (h *JobPostingHandler) ListApproved(c *gin.Context) {
	postings, err := h.postingService.ListApproved()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_postings": postings})
}

func (h *JobPostingHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	postings, err := h.postingService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_postings": postings})
}

func (h *JobPostingHandler) ListPending(c *gin.Context) {
	postings, err := h.postingService.ListPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_postings": postings})
}

func (h *JobPostingHandler) Close(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	posting, err := h.postingService.Close(userID, middleware.GetUserRole(c), c.Param("postingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posting)
}

// moderate строит обработчик одной команды модерации.
// Тело с причиной необязательно для approve, поэтому пустое тело
// не считается ошибкой binding'а.
func (h *JobPostingHandler) moderate(cmd workflow.Command) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		var req dto.ModerationRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
				return
			}
		}

		posting, err := h.postingService.Moderate(userID, middleware.GetUserRole(c), c.Param("postingId"), cmd, req.Reason)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, posting)
	}
}
