package http

import (
	"net/http"
	"time"

	"github.com/agendaly/booking-backend/internal/auth"
	"github.com/agendaly/booking-backend/internal/booking"
	"github.com/agendaly/booking-backend/internal/pkg/response"
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service       booking.Service
	tenantService tenant.Service
}

func NewHandler(service booking.Service, tenantService tenant.Service) *Handler {
	return &Handler{service: service, tenantService: tenantService}
}

// PublicAvailability returns the open slots of one day for the tenant
// identified by slug.
func (h *Handler) PublicAvailability(c *gin.Context) {
	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	t, err := h.tenantService.GetBySlug(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.service.Slots(c.Request.Context(), t, query.ServiceID, query.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, gin.H{"date": query.Date, "slots": out})
}

// PublicBook creates an appointment on behalf of an anonymous visitor.
func (h *Handler) PublicBook(c *gin.Context) {
	var body PublicBookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.tenantService.GetBySlug(c.Request.Context(), c.Param("tenant"))
	if err != nil {
		response.Error(c, err)
		return
	}

	appt, err := h.service.Book(c.Request.Context(), booking.BookRequest{
		Tenant:        t,
		ServiceID:     body.ServiceID,
		Start:         body.StartTime,
		CustomerName:  body.Name,
		CustomerEmail: body.Email,
		CustomerPhone: body.Phone,
		Notes:         body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment_id": appt.ID,
		"start_time":     appt.Start,
		"end_time":       appt.End,
		"status":         appt.Status,
	})
}

func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, total, err := h.service.List(c.Request.Context(), auth.GetTenantID(c), booking.Filter{
		Status:   query.Status,
		From:     query.From,
		To:       query.To,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]AppointmentResponse, len(items))
	for i, a := range items {
		out[i] = NewAppointmentResponse(a)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(out, query.Page, query.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	appt, err := h.service.GetByID(c.Request.Context(), auth.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAppointmentResponse(appt))
}

// Create books an appointment for an existing customer. It goes through the
// same conflict-checked transaction as the public flow.
func (h *Handler) Create(c *gin.Context) {
	var body CreateAppointmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.tenantService.GetByID(c.Request.Context(), auth.GetTenantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	appt, err := h.service.Book(c.Request.Context(), booking.BookRequest{
		Tenant:     t,
		ServiceID:  body.ServiceID,
		Start:      body.StartTime,
		CustomerID: body.CustomerID,
		Notes:      body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewAppointmentResponse(appt))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	appt, err := h.service.UpdateStatus(c.Request.Context(), auth.GetTenantID(c), id, booking.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAppointmentResponse(appt))
}

// Cancel flips the appointment to CANCELLED. The row is kept for history.
func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	appt, err := h.service.Cancel(c.Request.Context(), auth.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAppointmentResponse(appt))
}

// Metrics summarizes the current month for the dashboard.
func (h *Handler) Metrics(c *gin.Context) {
	t, err := h.tenantService.GetByID(c.Request.Context(), auth.GetTenantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.service.MonthMetrics(c.Request.Context(), t)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments_this_month": m.AppointmentsThisMonth,
		"completed":               m.Completed,
		"no_show":                 m.NoShow,
		"attendance_rate":         m.AttendanceRate,
	})
}
