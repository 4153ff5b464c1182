package booking

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventmarket/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	const q = `
INSERT INTO bookings (customer_id, vendor_id, event_type_id, event_date, notes, status)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), 'pending')
RETURNING id::text, created_at
`
	b := domain.Booking{
		CustomerID:  in.CustomerID,
		VendorID:    in.VendorID,
		EventTypeID: in.EventTypeID,
		EventDate:   in.EventDate,
		Notes:       in.Notes,
		Status:      domain.BookingPending,
	}
	if err := r.pool.QueryRow(ctx, q, in.CustomerID, in.VendorID, in.EventTypeID, in.EventDate, in.Notes).
		Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) GetByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	const q = `
SELECT id::text, customer_id::text, vendor_id::text, event_type_id, event_date, COALESCE(notes, ''), status, created_at
FROM bookings
WHERE customer_id::text = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var status string
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.VendorID, &b.EventTypeID, &b.EventDate, &b.Notes, &status, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Status = domain.BookingStatus(status)
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
