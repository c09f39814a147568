package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/agendaly/booking-backend/internal/pkg/interval"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookParams carries one booking attempt into the transaction. Exactly one
// of CustomerID (owner-created, existing customer) or CustomerEmail
// (public flow, upsert by tenant+email) must be set.
type BookParams struct {
	TenantID      string
	ServiceID     string
	Start         time.Time
	End           time.Time
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string
}

type Repository interface {
	// Book re-validates conflicts and inserts the appointment atomically.
	// Both checks and the insert run inside one serializable transaction, so
	// two concurrent attempts for overlapping intervals cannot both commit.
	// Returns ErrSlotTaken / ErrSlotBlocked on conflict and wraps
	// ErrTransientStore when the transaction failed without committing.
	Book(ctx context.Context, p BookParams) (*Appointment, error)

	GetByID(ctx context.Context, tenantID, id string) (*Appointment, error)
	List(ctx context.Context, tenantID string, filter Filter) ([]*Appointment, int, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status Status) error

	// ListBusyBetween returns the intervals of busy appointments
	// intersecting [from, to).
	ListBusyBetween(ctx context.Context, tenantID string, from, to time.Time) ([]interval.Interval, error)

	Metrics(ctx context.Context, tenantID string, from, to time.Time) (*Metrics, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var busyStatuses = []string{string(StatusScheduled), string(StatusCompleted)}

func (r *pgxRepository) Book(ctx context.Context, p BookParams) (*Appointment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// 1. Re-check busy appointments. The slot list the client saw may be
	// arbitrarily stale; this transaction is the sole source of truth.
	const busyQuery = `
		SELECT EXISTS (
			SELECT 1 FROM public.appointments
			WHERE tenant_id = $1
			  AND status = ANY($2)
			  AND start_time < $3
			  AND end_time > $4
		)`

	var conflict bool
	if err := tx.QueryRow(ctx, busyQuery, p.TenantID, busyStatuses, p.End, p.Start).Scan(&conflict); err != nil {
		return nil, classifyTxError(err, "check booking conflict failed")
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	// 2. Re-check time off.
	const timeOffQuery = `
		SELECT EXISTS (
			SELECT 1 FROM public.time_off
			WHERE tenant_id = $1
			  AND start_time < $2
			  AND end_time > $3
		)`

	var blocked bool
	if err := tx.QueryRow(ctx, timeOffQuery, p.TenantID, p.End, p.Start).Scan(&blocked); err != nil {
		return nil, classifyTxError(err, "check time off failed")
	}
	if blocked {
		return nil, ErrSlotBlocked
	}

	// 3. Resolve the customer.
	customerID := p.CustomerID
	if customerID == "" {
		const upsert = `
			INSERT INTO public.customers (tenant_id, name, email, phone)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (tenant_id, email)
			DO UPDATE SET name = EXCLUDED.name,
			              phone = COALESCE(EXCLUDED.phone, customers.phone)
			RETURNING id`

		if err := tx.QueryRow(ctx, upsert, p.TenantID, p.CustomerName, p.CustomerEmail, p.CustomerPhone).
			Scan(&customerID); err != nil {
			return nil, classifyTxError(err, "upsert customer failed")
		}
	} else {
		const verify = `SELECT EXISTS (SELECT 1 FROM public.customers WHERE tenant_id = $1 AND id = $2)`
		var ok bool
		if err := tx.QueryRow(ctx, verify, p.TenantID, customerID).Scan(&ok); err != nil {
			return nil, classifyTxError(err, "verify customer failed")
		}
		if !ok {
			return nil, ErrCustomerNotFound
		}
	}

	// 4. Insert. The exclusion constraint over (tenant_id, interval) for
	// busy statuses backstops step 1 if the database runs below serializable.
	const insert = `
		INSERT INTO public.appointments (tenant_id, customer_id, service_id, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	appt := &Appointment{
		TenantID:   p.TenantID,
		CustomerID: customerID,
		ServiceID:  p.ServiceID,
		Start:      p.Start,
		End:        p.End,
		Status:     StatusScheduled,
		Notes:      p.Notes,
	}
	if err := tx.QueryRow(ctx, insert,
		p.TenantID, customerID, p.ServiceID, p.Start, p.End, string(StatusScheduled), p.Notes,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt); err != nil {
		return nil, classifyTxError(err, "insert appointment failed")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classifyTxError(err, "commit booking tx failed")
	}
	return appt, nil
}

// classifyTxError maps Postgres failure modes to the booking error taxonomy:
// losing a serialization/deadlock race is retryable, hitting the overlap
// exclusion constraint means another writer committed first.
func classifyTxError(err error, msg string) error {
	var e *pgconn.PgError
	if errors.As(err, &e) {
		switch e.Code {
		case pgerrcode.ExclusionViolation:
			return ErrSlotTaken
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%s: %w", msg, errors.Join(err, ErrTransientStore))
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

const appointmentSelect = `
	a.id, a.tenant_id, a.customer_id, c.name, c.email,
	a.service_id, s.name,
	a.start_time, a.end_time, a.status, a.notes, a.created_at, a.updated_at`

func (r *pgxRepository) GetByID(ctx context.Context, tenantID, id string) (*Appointment, error) {
	query := `
		SELECT ` + appointmentSelect + `
		FROM public.appointments a
		JOIN public.customers c ON a.customer_id = c.id
		JOIN public.services s ON a.service_id = s.id
		WHERE a.tenant_id = $1 AND a.id = $2`

	var a Appointment
	if err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&a.ID, &a.TenantID, &a.CustomerID, &a.CustomerName, &a.CustomerEmail,
		&a.ServiceID, &a.ServiceName,
		&a.Start, &a.End, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) List(ctx context.Context, tenantID string, filter Filter) ([]*Appointment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"a.id", "a.tenant_id", "a.customer_id", "c.name", "c.email",
		"a.service_id", "s.name",
		"a.start_time", "a.end_time", "a.status", "a.notes", "a.created_at", "a.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.appointments a").
		Join("public.customers c ON a.customer_id = c.id").
		Join("public.services s ON a.service_id = s.id").
		Where(squirrel.Eq{"a.tenant_id": tenantID})

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"a.status": filter.Status})
	}
	// Date range filtering (intersection logic)
	if filter.From != nil {
		query = query.Where(squirrel.Gt{"a.end_time": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"a.start_time": filter.To})
	}

	query = query.OrderBy("a.start_time ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list appointments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments failed: %w", err)
	}
	defer rows.Close()

	var appointments []*Appointment
	var total int
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(
			&a.ID, &a.TenantID, &a.CustomerID, &a.CustomerName, &a.CustomerEmail,
			&a.ServiceID, &a.ServiceName,
			&a.Start, &a.End, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan appointment failed: %w", err)
		}
		appointments = append(appointments, &a)
	}
	return appointments, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, tenantID, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.appointments").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update appointment status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListBusyBetween(ctx context.Context, tenantID string, from, to time.Time) ([]interval.Interval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("start_time", "end_time").
		From("public.appointments").
		Where(squirrel.Eq{"tenant_id": tenantID, "status": busyStatuses}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build busy intervals query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list busy intervals failed: %w", err)
	}
	defer rows.Close()

	var busy []interval.Interval
	for rows.Next() {
		var i interval.Interval
		if err := rows.Scan(&i.Start, &i.End); err != nil {
			return nil, fmt.Errorf("scan busy interval failed: %w", err)
		}
		busy = append(busy, i)
	}
	return busy, nil
}

func (r *pgxRepository) Metrics(ctx context.Context, tenantID string, from, to time.Time) (*Metrics, error) {
	const query = `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'COMPLETED'),
			count(*) FILTER (WHERE status = 'NO_SHOW')
		FROM public.appointments
		WHERE tenant_id = $1
		  AND start_time >= $2
		  AND start_time < $3`

	var m Metrics
	if err := r.pool.QueryRow(ctx, query, tenantID, from, to).
		Scan(&m.AppointmentsThisMonth, &m.Completed, &m.NoShow); err != nil {
		return nil, fmt.Errorf("load metrics failed: %w", err)
	}
	if m.AppointmentsThisMonth > 0 {
		// rounded to the nearest whole percent
		m.AttendanceRate = (m.Completed*100 + m.AppointmentsThisMonth/2) / m.AppointmentsThisMonth
	}
	return &m, nil
}
