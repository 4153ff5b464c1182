package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventmarket/internal/domain"
	bookingrepo "eventmarket/internal/repository/booking"
)

// Service records event bookings produced by the wizard's final step.
type Service struct {
	repo       bookingRepo
	vendors    vendorGetter
	eventTypes eventTypeGetter
}

type bookingRepo interface {
	Create(ctx context.Context, in bookingrepo.CreateBookingInput) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
}

type vendorGetter interface {
	Get(ctx context.Context, id string) (*domain.Vendor, error)
}

type eventTypeGetter interface {
	Get(id string) (*domain.EventType, bool)
}

func New(repo bookingrepo.Repository, vendors vendorGetter, eventTypes eventTypeGetter) *Service {
	return &Service{repo: repo, vendors: vendors, eventTypes: eventTypes}
}

// CreateInput mirrors the booking request payload.
type CreateInput struct {
	VendorID    string    `json:"vendorId"`
	EventTypeID string    `json:"eventTypeId"`
	EventDate   time.Time `json:"eventDate"`
	Notes       string    `json:"notes"`
}

// Create validates the wizard selections and stores a pending booking.
func (s *Service) Create(ctx context.Context, customerID string, in CreateInput) (*domain.Booking, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.ErrInvalidCustomer
	}
	if strings.TrimSpace(in.VendorID) == "" {
		return nil, errors.New("vendorId required")
	}
	if strings.TrimSpace(in.EventTypeID) == "" {
		return nil, errors.New("eventTypeId required")
	}
	if in.EventDate.IsZero() {
		return nil, errors.New("eventDate required")
	}
	if _, ok := s.eventTypes.Get(in.EventTypeID); !ok {
		return nil, errors.New("unknown event type")
	}
	if _, err := s.vendors.Get(ctx, in.VendorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("vendor not found")
		}
		return nil, err
	}
	return s.repo.Create(ctx, bookingrepo.CreateBookingInput{
		CustomerID:  customerID,
		VendorID:    in.VendorID,
		EventTypeID: in.EventTypeID,
		EventDate:   in.EventDate,
		Notes:       strings.TrimSpace(in.Notes),
	})
}

// ListByCustomer returns the customer's bookings, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}
