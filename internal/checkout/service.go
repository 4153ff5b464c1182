package checkout

import (
	"context"
	"fmt"

	"eventmarket/internal/domain"
)

// OrderPersistence is the durable store the checkout hands orders to.
// internal/repository/order provides the Postgres and in-memory
// implementations.
type OrderPersistence interface {
	Save(ctx context.Context, order domain.Order) error
}

// Service converts a cart snapshot into persisted vendor orders.
type Service struct {
	orders OrderPersistence
}

// New creates a checkout Service.
func New(orders OrderPersistence) *Service {
	return &Service{orders: orders}
}

// Complete validates, splits and persists. Validation failures happen
// before any persistence call, so a rejected checkout leaves no orders
// behind. Persistence failures are surfaced as-is after the orders saved
// so far; each vendor order is an independent unit of work and already
// saved orders are not rolled back.
func (s *Service) Complete(ctx context.Context, items []domain.CartLineItem, customer CustomerInfo) ([]domain.Order, error) {
	orders, err := Split(items, customer)
	if err != nil {
		return nil, err
	}
	for i, order := range orders {
		if err := s.orders.Save(ctx, order); err != nil {
			return orders[:i], fmt.Errorf("save order for vendor %s: %w", order.VendorID, err)
		}
	}
	return orders, nil
}
