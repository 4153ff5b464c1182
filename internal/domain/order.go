package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a vendor-scoped order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus validates a status label from the outside world.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// CanTransition reports whether an order may move from its current status
// to next. Forward moves go pending -> processing -> shipped -> delivered;
// cancelled is reachable from pending and processing only.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing || next == OrderCancelled
	case OrderProcessing:
		return next == OrderShipped || next == OrderCancelled
	case OrderShipped:
		return next == OrderDelivered
	default:
		return false
	}
}

// Order is a committed purchase record scoped to exactly one vendor.
// Items all share the order's VendorID; Total is the vendor subtotal only
// and excludes the cart-level tax and shipping. Orders are never deleted,
// only status-transitioned.
type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	VendorID      string          `json:"vendorId"`
	VendorName    string          `json:"vendorName"`
	Items         []CartLineItem  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
