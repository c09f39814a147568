package http

import (
	"net/http"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/availability"
	"github.com/agendaly/booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context(), auth.GetTenantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RuleResponse, len(rules))
	for i := range rules {
		items[i] = NewRuleResponse(&rules[i])
	}
	c.JSON(http.StatusOK, gin.H{"availability": items})
}

func (h *Handler) CreateRule(c *gin.Context) {
	var body CreateRuleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), availability.CreateRuleRequest{
		TenantID:  auth.GetTenantID(c),
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewRuleResponse(rule))
}

func (h *Handler) DeleteRule(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), auth.GetTenantID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTimeOff(c *gin.Context) {
	items, err := h.service.ListTimeOff(c.Request.Context(), auth.GetTenantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]TimeOffResponse, len(items))
	for i := range items {
		out[i] = NewTimeOffResponse(&items[i])
	}
	c.JSON(http.StatusOK, gin.H{"time_off": out})
}

func (h *Handler) CreateTimeOff(c *gin.Context) {
	var body CreateTimeOffBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.service.CreateTimeOff(c.Request.Context(), availability.CreateTimeOffRequest{
		TenantID: auth.GetTenantID(c),
		Start:    body.Start,
		End:      body.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewTimeOffResponse(t))
}

func (h *Handler) DeleteTimeOff(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.DeleteTimeOff(c.Request.Context(), auth.GetTenantID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
