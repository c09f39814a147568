package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, tenantID, id string) (*Service, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]*Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, tenantID, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var serviceColumns = []string{
	"id", "tenant_id", "name", "duration_minutes", "price_cents", "active", "created_at", "updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, s *Service) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.services").
		Columns("tenant_id", "name", "duration_minutes", "price_cents", "active").
		Values(s.TenantID, s.Name, s.DurationMinutes, s.PriceCents, s.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create service query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, tenantID, id string) (*Service, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(serviceColumns...).
		From("public.services").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get service query failed: %w", err)
	}

	var s Service
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.DurationMinutes,
		&s.PriceCents, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]*Service, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select(serviceColumns...).
		From("public.services").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC")

	if activeOnly {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID, &s.TenantID, &s.Name, &s.DurationMinutes,
			&s.PriceCents, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service failed: %w", err)
		}
		services = append(services, &s)
	}
	return services, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Service) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.services").
		Set("name", s.Name).
		Set("duration_minutes", s.DurationMinutes).
		Set("price_cents", s.PriceCents).
		Set("active", s.Active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"tenant_id": s.TenantID, "id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, tenantID, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.services").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var e *pgconn.PgError
		// Appointments reference services with ON DELETE RESTRICT.
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return ErrInUse
		}
		return fmt.Errorf("delete service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
