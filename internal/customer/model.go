package customer

import (
	"net/http"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound   = apperror.New(http.StatusNotFound, "customer not found")
	ErrEmailTaken = apperror.New(http.StatusConflict, "customer with this email already exists")
	ErrInUse      = apperror.New(http.StatusConflict, "customer has appointments and cannot be deleted")
)

// Customer is an end client of a tenant. Uniqueness is per (tenant, email);
// the public booking flow upserts on that key.
type Customer struct {
	ID        string
	TenantID  string
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

// Filter defines options for listing customers.
type Filter struct {
	Search   string // matches name or email, case-insensitive
	Page     int
	PageSize int
}
