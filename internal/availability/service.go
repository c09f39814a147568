package availability

import (
	"context"
	"time"

	"github.com/agendaly/booking-backend/internal/pkg/interval"
)

type CreateRuleRequest struct {
	TenantID  string
	DayOfWeek int
	StartTime string
	EndTime   string
}

type CreateTimeOffRequest struct {
	TenantID string
	Start    time.Time
	End      time.Time
}

type Service interface {
	CreateRule(ctx context.Context, req CreateRuleRequest) (*WeeklyRule, error)
	ListRules(ctx context.Context, tenantID string) ([]WeeklyRule, error)
	DeleteRule(ctx context.Context, tenantID, id string) error

	CreateTimeOff(ctx context.Context, req CreateTimeOffRequest) (*TimeOff, error)
	ListTimeOff(ctx context.Context, tenantID string) ([]TimeOff, error)
	DeleteTimeOff(ctx context.Context, tenantID, id string) error

	// WindowsForDate resolves the concrete availability windows of one
	// calendar day. date must be midnight in the tenant's location.
	WindowsForDate(ctx context.Context, tenantID string, date time.Time) ([]interval.Interval, error)

	// TimeOffBetween returns blackout intervals intersecting [from, to).
	TimeOffBetween(ctx context.Context, tenantID string, from, to time.Time) ([]interval.Interval, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRule(ctx context.Context, req CreateRuleRequest) (*WeeklyRule, error) {
	if req.DayOfWeek < 1 || req.DayOfWeek > 7 {
		return nil, ErrInvalidDayOfWeek
	}

	sh, sm, err := ParseHM(req.StartTime)
	if err != nil {
		return nil, err
	}
	eh, em, err := ParseHM(req.EndTime)
	if err != nil {
		return nil, err
	}
	if eh*60+em <= sh*60+sm {
		return nil, ErrInvalidTimeRange
	}

	rule := &WeeklyRule{
		TenantID:  req.TenantID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *service) ListRules(ctx context.Context, tenantID string) ([]WeeklyRule, error) {
	return s.repo.ListRules(ctx, tenantID)
}

func (s *service) DeleteRule(ctx context.Context, tenantID, id string) error {
	return s.repo.DeleteRule(ctx, tenantID, id)
}

func (s *service) CreateTimeOff(ctx context.Context, req CreateTimeOffRequest) (*TimeOff, error) {
	if !req.End.After(req.Start) {
		return nil, ErrInvalidTimeRange
	}

	t := &TimeOff{
		TenantID: req.TenantID,
		Start:    req.Start,
		End:      req.End,
	}
	if err := s.repo.CreateTimeOff(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) ListTimeOff(ctx context.Context, tenantID string) ([]TimeOff, error) {
	return s.repo.ListTimeOff(ctx, tenantID)
}

func (s *service) DeleteTimeOff(ctx context.Context, tenantID, id string) error {
	return s.repo.DeleteTimeOff(ctx, tenantID, id)
}

func (s *service) WindowsForDate(ctx context.Context, tenantID string, date time.Time) ([]interval.Interval, error) {
	rules, err := s.repo.ListRulesForDay(ctx, tenantID, ISOWeekday(date))
	if err != nil {
		return nil, err
	}
	return DayWindows(date, rules), nil
}

func (s *service) TimeOffBetween(ctx context.Context, tenantID string, from, to time.Time) ([]interval.Interval, error) {
	items, err := s.repo.ListTimeOffOverlapping(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	intervals := make([]interval.Interval, len(items))
	for i, t := range items {
		intervals[i] = interval.New(t.Start, t.End)
	}
	return intervals, nil
}
