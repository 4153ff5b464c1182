package domain

import "github.com/shopspring/decimal"

// CartLineItem is one product entry in a shopper's cart. UnitPrice is a
// decimal currency amount; rounding happens only when formatting for
// display, never between computation steps.
type CartLineItem struct {
	ProductID  string          `json:"productId"`
	VendorID   string          `json:"vendorId"`
	VendorName string          `json:"vendorName"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
}

// LineTotal returns unit price times quantity at full precision.
func (li CartLineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// PriceBreakdown is the derived pricing of a whole cart. It is never
// persisted; orders store vendor subtotals only.
type PriceBreakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxRate  decimal.Decimal `json:"taxRate"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}
