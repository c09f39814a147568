package availability

import (
	"net/http"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/apperror"
)

var (
	ErrRuleNotFound     = apperror.New(http.StatusNotFound, "availability rule not found")
	ErrTimeOffNotFound  = apperror.New(http.StatusNotFound, "time off not found")
	ErrInvalidClockTime = apperror.New(http.StatusBadRequest, "time must be HH:MM between 00:00 and 23:59")
	ErrInvalidDayOfWeek = apperror.New(http.StatusBadRequest, "day_of_week must be 1 (Monday) to 7 (Sunday)")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
)

// WeeklyRule is a recurring availability window: on every DayOfWeek (ISO,
// Monday=1) the tenant accepts bookings between StartTime and EndTime wall
// clock. Several rules per day are allowed and treated independently; no
// overlap validation is performed between them.
type WeeklyRule struct {
	ID        string
	TenantID  string
	DayOfWeek int
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	CreatedAt time.Time
}

// TimeOff is a one-off blackout. No slot may overlap it.
type TimeOff struct {
	ID        string
	TenantID  string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}
