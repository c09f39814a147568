package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	UpdateSettings(ctx context.Context, t *Tenant) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const tenantColumns = "id, slug, name, timezone, brand_name, primary_color, created_at, updated_at"

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Tenant, error) {
	return r.getByField(ctx, "id", id)
}

func (r *pgxRepository) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *pgxRepository) getByField(ctx context.Context, field, value string) (*Tenant, error) {
	query := fmt.Sprintf("SELECT %s FROM public.tenants WHERE %s = $1", tenantColumns, field)

	var t Tenant
	if err := r.pool.QueryRow(ctx, query, value).Scan(
		&t.ID, &t.Slug, &t.Name, &t.Timezone,
		&t.BrandName, &t.PrimaryColor, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tenant failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) UpdateSettings(ctx context.Context, t *Tenant) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.tenants").
		Set("name", t.Name).
		Set("timezone", t.Timezone).
		Set("brand_name", t.BrandName).
		Set("primary_color", t.PrimaryColor).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update tenant query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tenant failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
