package order

import (
	"context"

	"eventmarket/internal/domain"
	orderrepo "eventmarket/internal/repository/order"
)

// Service exposes order history for customer dashboards and status
// transitions for vendor dashboards.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListByCustomer returns the customer's orders, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}

// ListByVendor returns a vendor's incoming orders, newest first.
func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]domain.Order, error) {
	return s.repo.GetByVendor(ctx, vendorID)
}

// Transition moves an order to the next status on behalf of a vendor.
// The order must belong to the vendor, and the move must be legal in the
// pending -> processing -> shipped -> delivered chain (cancelled only
// from pending or processing). Orders are never deleted.
func (s *Service) Transition(ctx context.Context, vendorID, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.VendorID != vendorID {
		return nil, domain.ErrNotFound
	}
	if !o.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}
