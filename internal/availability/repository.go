package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateRule(ctx context.Context, r *WeeklyRule) error
	ListRules(ctx context.Context, tenantID string) ([]WeeklyRule, error)
	ListRulesForDay(ctx context.Context, tenantID string, dayOfWeek int) ([]WeeklyRule, error)
	DeleteRule(ctx context.Context, tenantID, id string) error

	CreateTimeOff(ctx context.Context, t *TimeOff) error
	ListTimeOff(ctx context.Context, tenantID string) ([]TimeOff, error)

	// ListTimeOffOverlapping returns every time-off interval that intersects
	// [from, to).
	ListTimeOffOverlapping(ctx context.Context, tenantID string, from, to time.Time) ([]TimeOff, error)

	DeleteTimeOff(ctx context.Context, tenantID, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateRule(ctx context.Context, rule *WeeklyRule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.availability_rules").
		Columns("tenant_id", "day_of_week", "start_time", "end_time").
		Values(rule.TenantID, rule.DayOfWeek, rule.StartTime, rule.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create rule query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt)
}

func (r *pgxRepository) ListRules(ctx context.Context, tenantID string) ([]WeeklyRule, error) {
	return r.listRules(ctx, squirrel.Eq{"tenant_id": tenantID})
}

func (r *pgxRepository) ListRulesForDay(ctx context.Context, tenantID string, dayOfWeek int) ([]WeeklyRule, error) {
	return r.listRules(ctx, squirrel.Eq{"tenant_id": tenantID, "day_of_week": dayOfWeek})
}

func (r *pgxRepository) listRules(ctx context.Context, where squirrel.Eq) ([]WeeklyRule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "tenant_id", "day_of_week", "start_time", "end_time", "created_at").
		From("public.availability_rules").
		Where(where).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rules failed: %w", err)
	}
	defer rows.Close()

	var rules []WeeklyRule
	for rows.Next() {
		var rule WeeklyRule
		if err := rows.Scan(
			&rule.ID, &rule.TenantID, &rule.DayOfWeek,
			&rule.StartTime, &rule.EndTime, &rule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rule failed: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *pgxRepository) DeleteRule(ctx context.Context, tenantID, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.availability_rules").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete rule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete rule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func (r *pgxRepository) CreateTimeOff(ctx context.Context, t *TimeOff) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.time_off").
		Columns("tenant_id", "start_time", "end_time").
		Values(t.TenantID, t.Start, t.End).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create time off query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt)
}

func (r *pgxRepository) ListTimeOff(ctx context.Context, tenantID string) ([]TimeOff, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select("id", "tenant_id", "start_time", "end_time", "created_at").
		From("public.time_off").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("start_time ASC")
	return r.queryTimeOff(ctx, builder)
}

func (r *pgxRepository) ListTimeOffOverlapping(ctx context.Context, tenantID string, from, to time.Time) ([]TimeOff, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select("id", "tenant_id", "start_time", "end_time", "created_at").
		From("public.time_off").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")
	return r.queryTimeOff(ctx, builder)
}

func (r *pgxRepository) queryTimeOff(ctx context.Context, builder squirrel.SelectBuilder) ([]TimeOff, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build time off query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time off failed: %w", err)
	}
	defer rows.Close()

	var items []TimeOff
	for rows.Next() {
		var t TimeOff
		if err := rows.Scan(&t.ID, &t.TenantID, &t.Start, &t.End, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan time off failed: %w", err)
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *pgxRepository) DeleteTimeOff(ctx context.Context, tenantID, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.time_off").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete time off query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete time off failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrTimeOffNotFound
	}
	return nil
}
