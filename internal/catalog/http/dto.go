package http

import (
	"time"

	"github.com/agendaly/booking-backend/internal/catalog"
)

type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      *int      `json:"price_cents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// PublicServiceResponse omits timestamps and the active flag; public listings
// only ever contain active services.
type PublicServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      *int   `json:"price_cents"`
}

func NewPublicServiceResponse(s *catalog.Service) PublicServiceResponse {
	return PublicServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
	}
}

type CreateServiceBody struct {
	Name            string `json:"name" binding:"required,min=2"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=1440"`
	PriceCents      *int   `json:"price_cents" binding:"omitempty,min=0"`
}

type UpdateServiceBody struct {
	Name            *string `json:"name" binding:"omitempty,min=2"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	PriceCents      *int    `json:"price_cents" binding:"omitempty,min=0"`
	Active          *bool   `json:"active"`
}
