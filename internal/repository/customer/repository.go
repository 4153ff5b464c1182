package customer

import (
	"context"

	"eventmarket/internal/domain"
)

// Repository persists and fetches customer accounts.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
