package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "appointment not found")
	ErrSlotTaken        = apperror.NewWithReason(http.StatusConflict, "slot_taken", "time slot already booked")
	ErrSlotBlocked      = apperror.NewWithReason(http.StatusConflict, "slot_blocked", "time slot blocked by time off")
	ErrCustomerNotFound = apperror.New(http.StatusBadRequest, "customer not found")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot book a time in the past")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid appointment status")
	ErrStatusFinal      = apperror.New(http.StatusConflict, "appointment status can no longer change")
	ErrStoreUnavailable = apperror.New(http.StatusServiceUnavailable, "temporary storage failure, please retry")
)

// ErrTransientStore marks a transaction that failed for infrastructure
// reasons (serialization failure, deadlock) and did not commit. The whole
// booking attempt is safe to retry from the first step.
var ErrTransientStore = errors.New("transient store failure")

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
	StatusCancelled Status = "CANCELLED"
)

// Busy reports whether an appointment in this status occupies the calendar.
// Cancelled and no-show appointments free their interval.
func (s Status) Busy() bool {
	return s == StatusScheduled || s == StatusCompleted
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the status state machine: SCHEDULED may move to
// any terminal status, terminal statuses never change again.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusScheduled {
		return false
	}
	return next == StatusCompleted || next == StatusNoShow || next == StatusCancelled
}

// Appointment is a committed booking. Rows are never hard-deleted;
// cancellation is a status transition.
type Appointment struct {
	ID            string
	TenantID      string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ServiceID     string
	ServiceName   string
	Start         time.Time
	End           time.Time
	Status        Status
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines options for listing appointments.
type Filter struct {
	Status   string
	From     *time.Time // appointments ending after this instant
	To       *time.Time // appointments starting before this instant
	Page     int
	PageSize int
}

// Metrics is the dashboard summary for one calendar month.
type Metrics struct {
	AppointmentsThisMonth int
	Completed             int
	NoShow                int
	AttendanceRate        int // percent of this month's appointments completed
}
