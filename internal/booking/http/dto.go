package http

import (
	"time"

	"github.com/agendaly/booking-backend/internal/booking"
)

type AppointmentResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	ServiceID     string     `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewAppointmentResponse(a *booking.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		StartTime:     a.Start,
		EndTime:       a.End,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

type AvailabilityQuery struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Date      string `form:"date" binding:"required"`
}

type PublicBookBody struct {
	ServiceID string    `json:"service_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	Name      string    `json:"name" binding:"required,max=120"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     *string   `json:"phone" binding:"omitempty,max=40"`
	Notes     *string   `json:"notes" binding:"omitempty,max=1000"`
}

type CreateAppointmentBody struct {
	ServiceID  string    `json:"service_id" binding:"required,uuid"`
	CustomerID string    `json:"customer_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	Notes      *string   `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type ListQuery struct {
	Status   string     `form:"status"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page     int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
