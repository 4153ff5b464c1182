package checkout

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"eventmarket/internal/domain"
	"eventmarket/internal/pricing"
)

// CustomerInfo is the checkout-time identity attached to every produced
// order. All three fields are required.
type CustomerInfo struct {
	ID    string `json:"customerId"`
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
}

func (c CustomerInfo) validate() error {
	if strings.TrimSpace(c.ID) == "" ||
		strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" {
		return domain.ErrInvalidCustomer
	}
	return nil
}

// Split groups the cart snapshot by vendor and materializes one pending
// order per distinct vendor. Orders are emitted in first-appearance order
// of each vendor in the cart, and items keep their cart order within each
// group. Each order's total is that vendor's subtotal only; the cart-level
// tax and shipping are not distributed.
//
// Split never mutates the snapshot; clearing the cart after a successful
// checkout is the caller's job.
func Split(items []domain.CartLineItem, customer CustomerInfo) ([]domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := customer.validate(); err != nil {
		return nil, err
	}

	groups := make(map[string][]domain.CartLineItem)
	var vendorOrder []string
	vendorNames := make(map[string]string)
	for _, li := range items {
		if _, seen := groups[li.VendorID]; !seen {
			vendorOrder = append(vendorOrder, li.VendorID)
			vendorNames[li.VendorID] = li.VendorName
		}
		groups[li.VendorID] = append(groups[li.VendorID], li)
	}

	now := time.Now().UTC()
	orders := make([]domain.Order, 0, len(vendorOrder))
	for _, vendorID := range vendorOrder {
		group := groups[vendorID]
		orders = append(orders, domain.Order{
			ID:            newOrderID(now),
			CustomerID:    strings.TrimSpace(customer.ID),
			CustomerName:  strings.TrimSpace(customer.Name),
			CustomerEmail: strings.TrimSpace(customer.Email),
			VendorID:      vendorID,
			VendorName:    vendorNames[vendorID],
			Items:         group,
			Total:         pricing.VendorSubtotal(group),
			Status:        domain.OrderPending,
			CreatedAt:     now,
		})
	}
	return orders, nil
}

// newOrderID builds a time-based id with a random suffix so rapid
// sequential checkouts cannot collide.
func newOrderID(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall
		// back to the timestamp alone rather than aborting checkout.
		return "ord-" + strconv.FormatInt(now.UnixNano(), 10)
	}
	return "ord-" + strconv.FormatInt(now.UnixNano(), 10) + "-" + hex.EncodeToString(b)
}
