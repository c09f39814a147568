package booking

import (
	"context"
	"errors"
	"time"

	"github.com/agendaly/booking-backend/internal/availability"
	"github.com/agendaly/booking-backend/internal/catalog"
	"github.com/agendaly/booking-backend/internal/notify"
	"github.com/agendaly/booking-backend/internal/tenant"
	"go.uber.org/zap"
)

// bookRetries bounds how often a booking is retried after losing a
// serialization race before giving up with ErrStoreUnavailable.
const bookRetries = 3

// BookRequest is one booking attempt. CustomerID selects an existing
// customer (dashboard flow); otherwise CustomerName and CustomerEmail
// identify or create one (public flow).
type BookRequest struct {
	Tenant        *tenant.Tenant
	ServiceID     string
	Start         time.Time
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string
}

type Service interface {
	// Slots computes the bookable start times of one calendar day.
	// date is "YYYY-MM-DD", interpreted in the tenant's timezone.
	Slots(ctx context.Context, t *tenant.Tenant, serviceID, date string) ([]time.Time, error)

	Book(ctx context.Context, req BookRequest) (*Appointment, error)
	GetByID(ctx context.Context, tenantID, id string) (*Appointment, error)
	List(ctx context.Context, tenantID string, filter Filter) ([]*Appointment, int, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status Status) (*Appointment, error)
	Cancel(ctx context.Context, tenantID, id string) (*Appointment, error)

	// MonthMetrics summarizes the current calendar month in the tenant's
	// timezone for the dashboard.
	MonthMetrics(ctx context.Context, t *tenant.Tenant) (*Metrics, error)
}

type service struct {
	repo         Repository
	catalog      catalog.Manager
	availability availability.Service
	notifier     notify.Sender
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(repo Repository, cat catalog.Manager, avail availability.Service, notifier notify.Sender, logger *zap.Logger) Service {
	return &service{
		repo:         repo,
		catalog:      cat,
		availability: avail,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *service) Slots(ctx context.Context, t *tenant.Tenant, serviceID, date string) ([]time.Time, error) {
	svc, err := s.catalog.GetBookable(ctx, t.ID, serviceID)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", date, t.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	dayEnd := day.AddDate(0, 0, 1)

	windows, err := s.availability.WindowsForDate(ctx, t.ID, day)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []time.Time{}, nil
	}

	timeOff, err := s.availability.TimeOffBetween(ctx, t.ID, day, dayEnd)
	if err != nil {
		return nil, err
	}
	busy, err := s.repo.ListBusyBetween(ctx, t.ID, day, dayEnd)
	if err != nil {
		return nil, err
	}

	return availability.ComputeSlots(availability.SlotParams{
		Windows:  windows,
		Duration: svc.Duration(),
		TimeOff:  timeOff,
		Busy:     busy,
	}), nil
}

func (s *service) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	svc, err := s.catalog.GetBookable(ctx, req.Tenant.ID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if req.Start.Before(s.now()) {
		return nil, ErrStartTimePast
	}

	params := BookParams{
		TenantID:      req.Tenant.ID,
		ServiceID:     svc.ID,
		Start:         req.Start,
		End:           req.Start.Add(svc.Duration()),
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	}

	var appt *Appointment
	for attempt := 1; ; attempt++ {
		appt, err = s.repo.Book(ctx, params)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrTransientStore) {
			return nil, err
		}
		if attempt >= bookRetries {
			s.logger.Error("booking gave up after transient failures",
				zap.String("tenant_id", req.Tenant.ID),
				zap.Int("attempts", attempt),
				zap.Error(err))
			return nil, ErrStoreUnavailable
		}
		s.logger.Warn("booking tx lost a race, retrying",
			zap.String("tenant_id", req.Tenant.ID),
			zap.Int("attempt", attempt))
	}

	appt.ServiceName = svc.Name
	if appt.CustomerName == "" {
		appt.CustomerName = req.CustomerName
		appt.CustomerEmail = req.CustomerEmail
	}

	// Confirmation is best effort and must never fail the committed booking.
	if appt.CustomerEmail != "" {
		go s.sendConfirmation(req.Tenant, appt)
	}
	return appt, nil
}

func (s *service) sendConfirmation(t *tenant.Tenant, appt *Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	business := t.Name
	if t.BrandName != nil && *t.BrandName != "" {
		business = *t.BrandName
	}

	err := s.notifier.SendConfirmation(ctx, notify.Confirmation{
		To:          appt.CustomerEmail,
		Customer:    appt.CustomerName,
		Business:    business,
		ServiceName: appt.ServiceName,
		Start:       appt.Start,
		Location:    t.Location(),
	})
	if err != nil {
		s.logger.Warn("booking confirmation mail failed",
			zap.String("appointment_id", appt.ID),
			zap.Error(err))
	}
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) List(ctx context.Context, tenantID string, filter Filter) ([]*Appointment, int, error) {
	return s.repo.List(ctx, tenantID, filter)
}

func (s *service) UpdateStatus(ctx context.Context, tenantID, id string, status Status) (*Appointment, error) {
	if !status.Valid() || status == StatusScheduled {
		return nil, ErrInvalidStatus
	}

	appt, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !appt.Status.CanTransitionTo(status) {
		return nil, ErrStatusFinal
	}

	if err := s.repo.UpdateStatus(ctx, tenantID, id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	return appt, nil
}

func (s *service) Cancel(ctx context.Context, tenantID, id string) (*Appointment, error) {
	return s.UpdateStatus(ctx, tenantID, id, StatusCancelled)
}

func (s *service) MonthMetrics(ctx context.Context, t *tenant.Tenant) (*Metrics, error) {
	now := s.now().In(t.Location())
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, t.Location())
	to := from.AddDate(0, 1, 0)
	return s.repo.Metrics(ctx, t.ID, from, to)
}
