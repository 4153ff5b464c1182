package booking

import (
	"context"
	"time"

	"eventmarket/internal/domain"
)

// CreateBookingInput carries the fields needed to record a booking.
type CreateBookingInput struct {
	CustomerID  string
	VendorID    string
	EventTypeID string
	EventDate   time.Time
	Notes       string
}

type Repository interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
}
