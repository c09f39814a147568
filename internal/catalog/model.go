package catalog

import (
	"net/http"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "service not found")
	ErrInUse    = apperror.New(http.StatusConflict, "service has appointments; deactivate it instead")
)

// Service is a bookable offering. DurationMinutes drives both slot stepping
// and the booked interval length; only active services are exposed publicly.
type Service struct {
	ID              string
	TenantID        string
	Name            string
	DurationMinutes int
	PriceCents      *int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration returns the service length as a time.Duration.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
