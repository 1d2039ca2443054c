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

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	student := r.Group("/applications")
	student.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleStudent))
	{
		student.POST("", h.Apply)
		student.GET("/mine", h.ListMine)
	}

	employer := r.Group("")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("/employer/job-postings/:postingId/applications", h.ListByPosting)
		employer.POST("/applications/:applicationId/mark-reviewed", h.transition(workflow.ApplicationMarkReviewed))
		employer.POST("/applications/:applicationId/schedule-interview", h.ScheduleInterview)
		employer.POST("/applications/:applicationId/make-offer", h.transition(workflow.ApplicationMakeOffer))
		employer.POST("/applications/:applicationId/mark-hired", h.transition(workflow.ApplicationMarkHired))
		employer.POST("/applications/:applicationId/reject", h.transition(workflow.ApplicationReject))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/interviews", h.ListInterviews)
	}
}

// Apply - отклик студента на одобренную вакансию
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) ListByPosting(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByPosting(userID, c.Param("postingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListInterviews - назначенные интервью для админского надзора
func (h *ApplicationHandler) ListInterviews(c *gin.Context) {
	apps, err := h.applicationService.ListInterviews()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ScheduleInterview отдельный: единственная команда конвейера с телом
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Transition(c.Request.Context(), userID, middleware.GetUserRole(c),
		c.Param("applicationId"), workflow.ApplicationScheduleInterview, req.InterviewDateTime)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) transition(cmd workflow.Command) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		app, err := h.applicationService.Transition(c.Request.Context(), userID, middleware.GetUserRole(c),
			c.Param("applicationId"), cmd, "")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, app)
	}
}
