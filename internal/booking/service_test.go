package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/agendaly/booking-backend/internal/availability"
	"github.com/agendaly/booking-backend/internal/catalog"
	"github.com/agendaly/booking-backend/internal/notify"
	"github.com/agendaly/booking-backend/internal/pkg/interval"
	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	bookErrs  []error // consumed one per Book call, nil means success
	bookCalls int
	busy      []interval.Interval
	byID      map[string]*Appointment
	statuses  map[string]Status
}

func (f *fakeRepo) Book(_ context.Context, p BookParams) (*Appointment, error) {
	f.bookCalls++
	if len(f.bookErrs) > 0 {
		err := f.bookErrs[0]
		f.bookErrs = f.bookErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &Appointment{
		ID:         fmt.Sprintf("appt-%d", f.bookCalls),
		TenantID:   p.TenantID,
		ServiceID:  p.ServiceID,
		Start:      p.Start,
		End:        p.End,
		Status:     StatusScheduled,
		CustomerID: "cust-1",
	}, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _, id string) (*Appointment, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ string, _ Filter) ([]*Appointment, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _, id string, status Status) error {
	if f.statuses == nil {
		f.statuses = map[string]Status{}
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeRepo) ListBusyBetween(_ context.Context, _ string, _, _ time.Time) ([]interval.Interval, error) {
	return f.busy, nil
}

func (f *fakeRepo) Metrics(_ context.Context, _ string, _, _ time.Time) (*Metrics, error) {
	return &Metrics{}, nil
}

type fakeCatalog struct {
	services map[string]*catalog.Service
}

func (f *fakeCatalog) Create(_ context.Context, _ catalog.CreateRequest) (*catalog.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) GetByID(_ context.Context, _, id string) (*catalog.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalog) GetBookable(ctx context.Context, tenantID, id string) (*catalog.Service, error) {
	s, err := f.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, catalog.ErrNotFound
	}
	return s, nil
}

func (f *fakeCatalog) List(_ context.Context, _ string) ([]*catalog.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) ListActive(_ context.Context, _ string) ([]*catalog.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) Update(_ context.Context, _, _ string, _ catalog.UpdateRequest) (*catalog.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) Delete(_ context.Context, _, _ string) error { return nil }

type fakeAvailability struct {
	windows []interval.Interval
	timeOff []interval.Interval
}

func (f *fakeAvailability) CreateRule(_ context.Context, _ availability.CreateRuleRequest) (*availability.WeeklyRule, error) {
	return nil, nil
}

func (f *fakeAvailability) ListRules(_ context.Context, _ string) ([]availability.WeeklyRule, error) {
	return nil, nil
}

func (f *fakeAvailability) DeleteRule(_ context.Context, _, _ string) error { return nil }

func (f *fakeAvailability) CreateTimeOff(_ context.Context, _ availability.CreateTimeOffRequest) (*availability.TimeOff, error) {
	return nil, nil
}

func (f *fakeAvailability) ListTimeOff(_ context.Context, _ string) ([]availability.TimeOff, error) {
	return nil, nil
}

func (f *fakeAvailability) DeleteTimeOff(_ context.Context, _, _ string) error { return nil }

func (f *fakeAvailability) WindowsForDate(_ context.Context, _ string, _ time.Time) ([]interval.Interval, error) {
	return f.windows, nil
}

func (f *fakeAvailability) TimeOffBetween(_ context.Context, _ string, _, _ time.Time) ([]interval.Interval, error) {
	return f.timeOff, nil
}

func newTestService(repo *fakeRepo, cat *fakeCatalog, avail *fakeAvailability, now time.Time) *service {
	return &service{
		repo:         repo,
		catalog:      cat,
		availability: avail,
		notifier:     notify.NewNoopSender(),
		logger:       zap.NewNop(),
		now:          func() time.Time { return now },
	}
}

func testTenant() *tenant.Tenant {
	return &tenant.Tenant{ID: "t1", Slug: "acme", Name: "ACME", Timezone: "UTC"}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{services: map[string]*catalog.Service{
		"svc-30":  {ID: "svc-30", TenantID: "t1", Name: "Cut", DurationMinutes: 30, Active: true},
		"svc-off": {ID: "svc-off", TenantID: "t1", Name: "Retired", DurationMinutes: 30},
	}}
}

func TestBookRetriesTransientFailures(t *testing.T) {
	transient := fmt.Errorf("tx lost: %w", ErrTransientStore)
	repo := &fakeRepo{bookErrs: []error{transient, transient, nil}}
	svc := newTestService(repo, testCatalog(), &fakeAvailability{}, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	appt, err := svc.Book(context.Background(), BookRequest{
		Tenant:        testTenant(),
		ServiceID:     "svc-30",
		Start:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Jo",
		CustomerEmail: "jo@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 3, repo.bookCalls)
	require.Equal(t, StatusScheduled, appt.Status)
	require.Equal(t, "Cut", appt.ServiceName)
	require.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), appt.End, "end time derives from service duration")
}

func TestBookGivesUpAfterRetries(t *testing.T) {
	transient := fmt.Errorf("tx lost: %w", ErrTransientStore)
	repo := &fakeRepo{bookErrs: []error{transient, transient, transient, transient}}
	svc := newTestService(repo, testCatalog(), &fakeAvailability{}, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	_, err := svc.Book(context.Background(), BookRequest{
		Tenant:        testTenant(),
		ServiceID:     "svc-30",
		Start:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Jo",
		CustomerEmail: "jo@example.com",
	})
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.Equal(t, bookRetries, repo.bookCalls)
}

func TestBookConflictIsNotRetried(t *testing.T) {
	repo := &fakeRepo{bookErrs: []error{ErrSlotTaken}}
	svc := newTestService(repo, testCatalog(), &fakeAvailability{}, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	_, err := svc.Book(context.Background(), BookRequest{
		Tenant:        testTenant(),
		ServiceID:     "svc-30",
		Start:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Jo",
		CustomerEmail: "jo@example.com",
	})
	require.ErrorIs(t, err, ErrSlotTaken)
	require.Equal(t, 1, repo.bookCalls, "a real conflict must surface immediately")
}

func TestBookRejectsPastStart(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, testCatalog(), &fakeAvailability{}, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	_, err := svc.Book(context.Background(), BookRequest{
		Tenant:        testTenant(),
		ServiceID:     "svc-30",
		Start:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Jo",
		CustomerEmail: "jo@example.com",
	})
	require.ErrorIs(t, err, ErrStartTimePast)
	require.Zero(t, repo.bookCalls)
}

func TestBookRejectsInactiveService(t *testing.T) {
	svc := newTestService(&fakeRepo{}, testCatalog(), &fakeAvailability{}, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	_, err := svc.Book(context.Background(), BookRequest{
		Tenant:        testTenant(),
		ServiceID:     "svc-off",
		Start:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Jo",
		CustomerEmail: "jo@example.com",
	})
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestSlotsCombinesWindowsTimeOffAndBusy(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC) }
	avail := &fakeAvailability{
		windows: []interval.Interval{interval.New(day(9, 0), day(12, 0))},
		timeOff: []interval.Interval{interval.New(day(11, 0), day(11, 30))},
	}
	repo := &fakeRepo{busy: []interval.Interval{interval.New(day(9, 30), day(10, 0))}}
	svc := newTestService(repo, testCatalog(), avail, day(8, 0))

	slots, err := svc.Slots(context.Background(), testTenant(), "svc-30", "2026-03-02")
	require.NoError(t, err)
	require.Equal(t, []time.Time{
		day(9, 0), day(10, 0), day(10, 30), day(11, 30),
	}, slots)
}

func TestSlotsRejectsBadDate(t *testing.T) {
	svc := newTestService(&fakeRepo{}, testCatalog(), &fakeAvailability{}, time.Now())

	_, err := svc.Slots(context.Background(), testTenant(), "svc-30", "03/02/2026")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestSlotsEmptyWhenDayClosed(t *testing.T) {
	svc := newTestService(&fakeRepo{}, testCatalog(), &fakeAvailability{}, time.Now())

	slots, err := svc.Slots(context.Background(), testTenant(), "svc-30", "2026-03-02")
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*Appointment{
		"a1": {ID: "a1", Status: StatusScheduled},
		"a2": {ID: "a2", Status: StatusCompleted},
	}}
	svc := newTestService(repo, testCatalog(), &fakeAvailability{}, time.Now())
	ctx := context.Background()

	appt, err := svc.UpdateStatus(ctx, "t1", "a1", StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, appt.Status)
	require.Equal(t, StatusCompleted, repo.statuses["a1"])

	_, err = svc.UpdateStatus(ctx, "t1", "a2", StatusNoShow)
	require.ErrorIs(t, err, ErrStatusFinal, "terminal statuses never change again")

	_, err = svc.UpdateStatus(ctx, "t1", "a1", Status("WAITLISTED"))
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "t1", "a1", StatusScheduled)
	require.ErrorIs(t, err, ErrInvalidStatus, "cannot move back to scheduled")

	_, err = svc.UpdateStatus(ctx, "t1", "missing", StatusCompleted)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelIsAStatusTransition(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*Appointment{
		"a1": {ID: "a1", Status: StatusScheduled},
	}}
	svc := newTestService(repo, testCatalog(), &fakeAvailability{}, time.Now())

	appt, err := svc.Cancel(context.Background(), "t1", "a1")
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, appt.Status)
	require.Equal(t, StatusCancelled, repo.statuses["a1"])
}
