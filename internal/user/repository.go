package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendaly/booking-backend/internal/tenant"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// CreateWithTenant inserts the tenant and its owner user in one
	// transaction, so a failed registration never leaves an orphan tenant.
	CreateWithTenant(ctx context.Context, u *User, t *tenant.Tenant) error

	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const userColumns = "id, tenant_id, name, email, password_hash, created_at, last_login_at"

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM public.users WHERE email = $1", userColumns)
	return r.scanOne(ctx, query, email)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM public.users WHERE id = $1", userColumns)
	return r.scanOne(ctx, query, id)
}

func (r *pgxRepository) scanOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.TenantID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.LastLoginAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	return &u, nil
}

func (r *pgxRepository) CreateWithTenant(ctx context.Context, u *User, t *tenant.Tenant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin register tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertTenant = `
		INSERT INTO public.tenants (slug, name, timezone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertTenant, t.Slug, t.Name, t.Timezone).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return tenant.ErrSlugTaken
		}
		return fmt.Errorf("create tenant failed: %w", err)
	}

	const insertUser = `
		INSERT INTO public.users (tenant_id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	u.TenantID = t.ID
	if err := tx.QueryRow(ctx, insertUser, u.TenantID, u.Name, u.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create user failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit register tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	const query = `
		UPDATE public.users
		SET last_login_at = $1
		WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, t, id); err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	return nil
}
