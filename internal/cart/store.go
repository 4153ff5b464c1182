package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"eventmarket/internal/domain"
)

// Store holds one shopper's in-progress selection. A store is owned by a
// single session; the mutex guards against overlapping HTTP requests on
// the same session, not against multi-owner sharing.
type Store struct {
	mu    sync.Mutex
	items []domain.CartLineItem
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add inserts a line item with quantity 1, or increments the quantity of
// an existing entry with the same product id. Insertion order is kept.
func (s *Store) Add(productID, vendorID, vendorName string, unitPrice decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, domain.CartLineItem{
		ProductID:  productID,
		VendorID:   vendorID,
		VendorName: vendorName,
		UnitPrice:  unitPrice,
		Quantity:   1,
	})
}

// SetQuantity updates an entry's quantity, clamping values below 1 up to
// 1. Removal is explicit via Remove only. Unknown product ids are a no-op.
func (s *Store) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the entry for productID if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Snapshot returns a copy of the current line items so pricing and
// splitting can run without observing mutation mid-computation.
func (s *Store) Snapshot() []domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of distinct line items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
