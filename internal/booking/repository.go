package booking

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
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)

	// UpdateStatus transitions a booking from one status to another in a
	// single conditional write, so two concurrent transitions cannot both
	// succeed. Returns ErrNotFound when no row matched id+from.
	UpdateStatus(ctx context.Context, id string, from, to Status) (*Booking, error)

	Count(ctx context.Context) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "id, ad_space_id, advertiser_name, advertiser_email, start_date, end_date, created_at, status, total_cost"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("ad_space_id", "advertiser_name", "advertiser_email", "start_date", "end_date", "status", "total_cost").
		Values(b.AdSpaceID, b.AdvertiserName, b.AdvertiserEmail, b.StartDate, b.EndDate, b.Status, b.TotalCost).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

// mapConstraintError maps constraint-violation SQLSTATEs raised on insert to
// their domain errors. Returns nil when err is not a recognised constraint
// violation.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrDuplicateAdvertiser
	case pgerrcode.StringDataRightTruncationDataException:
		return ErrNameTooLong
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM public.bookings WHERE id = $1`, bookingColumns)
	row := r.pool.QueryRow(ctx, query, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "ad_space_id", "advertiser_name", "advertiser_email",
		"start_date", "end_date", "created_at", "status", "total_cost",
	).From("public.bookings")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	query = query.OrderBy("created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, from, to Status) (*Booking, error) {
	query := fmt.Sprintf(`
		UPDATE public.bookings
		SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, bookingColumns)

	row := r.pool.QueryRow(ctx, query, to, id, from)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking status failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM public.bookings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings failed: %w", err)
	}
	return count, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.AdSpaceID, &b.AdvertiserName, &b.AdvertiserEmail,
		&b.StartDate, &b.EndDate, &b.CreatedAt, &b.Status, &b.TotalCost,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
