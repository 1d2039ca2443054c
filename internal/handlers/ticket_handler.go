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

type TicketHandler struct {
	*BaseHandler
	ticketService services.TicketService
}

func NewTicketHandler(base *BaseHandler, ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{
		BaseHandler:   base,
		ticketService: ticketService,
	}
}

func (h *TicketHandler) RegisterRoutes(r *gin.RouterGroup) {
	tickets := r.Group("/tickets")
	tickets.Use(middleware.AuthMiddleware())
	{
		tickets.POST("", h.Create)
		tickets.GET("/mine", h.ListMine)
	}

	admin := r.Group("/admin/tickets")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:ticketId/resolve", h.transition(workflow.TicketResolve))
		admin.POST("/:ticketId/escalate", h.transition(workflow.TicketEscalate))
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// List - все тикеты, фильтр ?status=open|resolved|escalated
func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.ticketService.List(models.TicketStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (h *TicketHandler) transition(cmd workflow.Command) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}

		var req dto.ResolveTicketRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}

		ticket, err := h.ticketService.Transition(userID, middleware.GetUserRole(c),
			c.Param("ticketId"), cmd, req.Text)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, ticket)
	}
}
