package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/middleware"
	"recruitportal/internal/models"
	"recruitportal/internal/services"
)

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
}

func NewCandidateHandler(base *BaseHandler, candidateService services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
	}
}

func (h *CandidateHandler) RegisterRoutes(r *gin.RouterGroup) {
	employer := r.Group("/employer/candidates")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("", h.List)
	}
}

// List - каталог кандидатов (студентов) для работодателя
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
