package pricing

import (
	"github.com/shopspring/decimal"

	"eventmarket/internal/domain"
)

var (
	// TaxRate is the flat sales tax applied to the cart subtotal.
	TaxRate = decimal.New(8, -2)
	// ShippingThreshold is the subtotal above which shipping is waived.
	// The comparison is strictly greater-than: a subtotal of exactly
	// 50.00 still pays shipping, and so does an empty cart.
	ShippingThreshold = decimal.New(50, 0)
	// ShippingFee is the flat fee charged below the threshold.
	ShippingFee = decimal.New(999, -2)
)

// Compute derives the full price breakdown from a cart snapshot. It is a
// pure function: no I/O, no clock, no randomness. All amounts keep full
// decimal precision; round only when formatting for display.
func Compute(items []domain.CartLineItem) domain.PriceBreakdown {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.LineTotal())
	}

	tax := subtotal.Mul(TaxRate)

	shipping := ShippingFee
	if subtotal.GreaterThan(ShippingThreshold) {
		shipping = decimal.Zero
	}

	return domain.PriceBreakdown{
		Subtotal: subtotal,
		TaxRate:  TaxRate,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// VendorSubtotal sums unit price times quantity over the given items.
// Used for per-vendor order totals, which exclude tax and shipping.
func VendorSubtotal(items []domain.CartLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, li := range items {
		sum = sum.Add(li.LineTotal())
	}
	return sum
}

// FormatAmount renders a decimal amount with two fraction digits for
// display. This is the only place rounding happens.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
