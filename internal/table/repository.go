package table

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
	Create(ctx context.Context, t *Table) error
	GetByID(ctx context.Context, id string) (*Table, error)
	List(ctx context.Context, filter Filter) ([]*Table, int, error)
	Update(ctx context.Context, t *Table) error
	Delete(ctx context.Context, id string) error
	SetAvailability(ctx context.Context, id string, available bool) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func featureStrings(features []Feature) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = string(f)
	}
	return out
}

func parseStoredFeatures(raw []string) []Feature {
	out := make([]Feature, len(raw))
	for i, r := range raw {
		out[i] = Feature(r)
	}
	return out
}

func (r *pgxRepository) Create(ctx context.Context, t *Table) error {
	const query = `
		INSERT INTO public.tables (table_number, capacity, location, features)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_available, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, t.TableNumber, t.Capacity, t.Location, featureStrings(t.Features)).
		Scan(&t.ID, &t.IsAvailable, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("create table failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Table, error) {
	const query = `
		SELECT id, table_number, capacity, location, features, is_available, photo_file_id, created_at, updated_at
		FROM public.tables
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var t Table
	var rawFeatures []string
	if err := row.Scan(
		&t.ID, &t.TableNumber, &t.Capacity, &t.Location, &rawFeatures,
		&t.IsAvailable, &t.PhotoFileID, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get table failed: %w", err)
	}
	t.Features = parseStoredFeatures(rawFeatures)
	return &t, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Table, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "table_number", "capacity", "location", "features",
		"is_available", "photo_file_id", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.tables")

	if filter.CapacityFloor > 0 {
		query = query.Where(squirrel.GtOrEq{"capacity": filter.CapacityFloor})
	}
	if filter.Location != "" {
		query = query.Where(squirrel.Eq{"location": filter.Location})
	}
	if len(filter.Features) > 0 {
		// All requested features must be present.
		query = query.Where("features @> ?", featureStrings(filter.Features))
	}
	if filter.AvailableOnly {
		query = query.Where(squirrel.Eq{"is_available": true})
	}

	query = query.OrderBy("table_number ASC")

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
		return nil, 0, fmt.Errorf("build list tables query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tables failed: %w", err)
	}
	defer rows.Close()

	var tables []*Table
	var total int

	for rows.Next() {
		var t Table
		var rawFeatures []string
		if err := rows.Scan(
			&t.ID, &t.TableNumber, &t.Capacity, &t.Location, &rawFeatures,
			&t.IsAvailable, &t.PhotoFileID, &t.CreatedAt, &t.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan table failed: %w", err)
		}
		t.Features = parseStoredFeatures(rawFeatures)
		tables = append(tables, &t)
	}

	return tables, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, t *Table) error {
	const query = `
		UPDATE public.tables
		SET table_number = $1, capacity = $2, location = $3, features = $4, photo_file_id = $5, updated_at = now()
		WHERE id = $6
	`
	ct, err := r.pool.Exec(ctx, query, t.TableNumber, t.Capacity, t.Location, featureStrings(t.Features), t.PhotoFileID, t.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("update table failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.tables WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrHasBookings
		}
		return fmt.Errorf("delete table failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	const query = `
		UPDATE public.tables
		SET is_available = $1, updated_at = now()
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("set table availability failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
