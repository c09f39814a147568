package http

import (
	"time"

	"github.com/agendaly/booking-backend/internal/availability"
)

type RuleResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewRuleResponse(r *availability.WeeklyRule) RuleResponse {
	return RuleResponse{
		ID:        r.ID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type CreateRuleBody struct {
	DayOfWeek int    `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
}

type TimeOffResponse struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewTimeOffResponse(t *availability.TimeOff) TimeOffResponse {
	return TimeOffResponse{ID: t.ID, Start: t.Start, End: t.End}
}

type CreateTimeOffBody struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}
