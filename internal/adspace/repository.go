package adspace

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
	Create(ctx context.Context, space *AdSpace) error
	GetByID(ctx context.Context, id string) (*AdSpace, error)
	// ListAvailable returns Available ad spaces matching the filter,
	// in stable created_at/id order.
	ListAvailable(ctx context.Context, filter Filter) ([]*AdSpace, error)
	Update(ctx context.Context, space *AdSpace) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *AdSpace) error {
	const query = `
		INSERT INTO public.ad_spaces (name, type, city, price_per_day, address, availability_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		s.Name, s.Type, s.City, s.PricePerDay, s.Address, s.AvailabilityStatus,
	).Scan(&s.ID)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create ad space failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*AdSpace, error) {
	const query = `
		SELECT id, name, type, city, price_per_day, address, availability_status
		FROM public.ad_spaces
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var s AdSpace
	if err := row.Scan(&s.ID, &s.Name, &s.Type, &s.City, &s.PricePerDay, &s.Address, &s.AvailabilityStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ad space failed: %w", err)
	}
	return &s, nil
}

// listAvailableQuery builds the listing query. Only Available ad spaces are
// selected, whatever the filter says.
func listAvailableQuery(filter Filter) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "name", "type", "city", "price_per_day", "address", "availability_status").
		From("public.ad_spaces").
		Where(squirrel.Eq{"availability_status": Available})

	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.City != "" {
		query = query.Where(squirrel.Eq{"city": filter.City})
	}

	return query.OrderBy("created_at ASC", "id ASC")
}

func (r *pgxRepository) ListAvailable(ctx context.Context, filter Filter) ([]*AdSpace, error) {
	sql, args, err := listAvailableQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ad spaces query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list ad spaces failed: %w", err)
	}
	defer rows.Close()

	var spaces []*AdSpace
	for rows.Next() {
		var s AdSpace
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.City, &s.PricePerDay, &s.Address, &s.AvailabilityStatus); err != nil {
			return nil, fmt.Errorf("scan ad space failed: %w", err)
		}
		spaces = append(spaces, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ad spaces failed: %w", err)
	}

	return spaces, nil
}

// mapConstraintError maps constraint-violation SQLSTATEs to their domain
// errors. Returns nil when err is not a recognised constraint violation.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrDuplicateName
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedByBooking
	}
	return nil
}

func (r *pgxRepository) Update(ctx context.Context, s *AdSpace) error {
	const query = `
		UPDATE public.ad_spaces
		SET name = $1, type = $2, city = $3, price_per_day = $4, address = $5, availability_status = $6
		WHERE id = $7
	`
	ct, err := r.pool.Exec(ctx, query,
		s.Name, s.Type, s.City, s.PricePerDay, s.Address, s.AvailabilityStatus, s.ID,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update ad space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.ad_spaces WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("delete ad space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM public.ad_spaces`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ad spaces failed: %w", err)
	}
	return count, nil
}
