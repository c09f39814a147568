package tenant

import (
	"net/http"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "tenant not found")
	ErrSlugTaken    = apperror.New(http.StatusConflict, "slug already in use")
	ErrBadTimezone  = apperror.New(http.StatusBadRequest, "unknown timezone")
	ErrInvalidInput = apperror.New(http.StatusBadRequest, "invalid input parameters")
)

// Tenant is a business on the platform. Slug identifies its public booking
// page; Timezone is an IANA zone name used to anchor availability windows.
type Tenant struct {
	ID           string
	Slug         string
	Name         string
	Timezone     string
	BrandName    *string
	PrimaryColor *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Location resolves the tenant's configured timezone, falling back to UTC
// when it is empty or unknown. Availability weekdays and window instants are
// always computed in this location.
func (t *Tenant) Location() *time.Location {
	if t.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
