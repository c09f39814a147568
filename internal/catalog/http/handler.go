package http

import (
	"net/http"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/catalog"
	"github.com/agendaly/booking-backend/internal/pkg/response"
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	manager       catalog.Manager
	tenantService tenant.Service
}

func NewHandler(manager catalog.Manager, tenantService tenant.Service) *Handler {
	return &Handler{manager: manager, tenantService: tenantService}
}

func (h *Handler) List(c *gin.Context) {
	services, err := h.manager.List(c.Request.Context(), auth.GetTenantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateServiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.manager.Create(c.Request.Context(), catalog.CreateRequest{
		TenantID:        auth.GetTenantID(c),
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		PriceCents:      body.PriceCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewServiceResponse(s))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	s, err := h.manager.GetByID(c.Request.Context(), auth.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewServiceResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateServiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.manager.Update(c.Request.Context(), auth.GetTenantID(c), id, catalog.UpdateRequest{
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		PriceCents:      body.PriceCents,
		Active:          body.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewServiceResponse(s))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.manager.Delete(c.Request.Context(), auth.GetTenantID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PublicList returns the active services of the tenant identified by slug.
func (h *Handler) PublicList(c *gin.Context) {
	t, err := h.tenantService.GetBySlug(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		response.Error(c, err)
		return
	}

	services, err := h.manager.ListActive(c.Request.Context(), t.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PublicServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewPublicServiceResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}
