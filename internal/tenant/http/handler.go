package http

import (
	"net/http"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/pkg/response"
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service tenant.Service
}

func NewHandler(service tenant.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), auth.GetTenantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTenantResponse(t))
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var body UpdateSettingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := tenant.UpdateSettingsRequest{
		Name:         body.Name,
		Timezone:     body.Timezone,
		BrandName:    body.BrandName,
		PrimaryColor: body.PrimaryColor,
	}

	t, err := h.service.UpdateSettings(c.Request.Context(), auth.GetTenantID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTenantResponse(t))
}
