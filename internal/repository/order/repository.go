package order

import (
	"context"

	"eventmarket/internal/domain"
)

// Repository is the durable order store. Orders are append-only apart
// from status transitions.
type Repository interface {
	Save(ctx context.Context, order domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	GetByVendor(ctx context.Context, vendorID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
