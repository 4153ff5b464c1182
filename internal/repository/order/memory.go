package order

import (
	"context"
	"sort"
	"sync"

	"eventmarket/internal/domain"
)

// memoryRepo is an in-process Repository used in tests and as the
// swappable non-durable backend when no database is configured.
type memoryRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	seq    map[string]int
	next   int
}

// NewMemory returns an empty in-memory Repository.
func NewMemory() Repository {
	return &memoryRepo{
		orders: make(map[string]domain.Order),
		seq:    make(map[string]int),
	}
}

func (r *memoryRepo) Save(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.orders[order.ID] = cloneOrder(order)
	r.seq[order.ID] = r.next
	r.next++
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneOrder(o)
	return &c, nil
}

func (r *memoryRepo) GetByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.CustomerID == customerID }), nil
}

func (r *memoryRepo) GetByVendor(_ context.Context, vendorID string) ([]domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.VendorID == vendorID }), nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *memoryRepo) filter(keep func(domain.Order) bool) []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	// Newest first, matching the Postgres queries.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out
}

func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.CartLineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
