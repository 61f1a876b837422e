// Package checkout implements the storefront checkout pipeline: pricing
// derivation, shipping-contact validation, order construction and
// submission to the commerce backend.
package checkout

import "github.com/lucia/tienda-terminal-go/internal/store"

// Shipping policy. The threshold and the flat fee are OR-combined at the
// cart level: a single qualifying item waives shipping for the whole
// order.
const (
	FreeShippingThreshold = 35.0
	ShippingFee           = 6.0
)

// PricingResult holds the order totals derived from cart contents. It is
// recomputed from the cart on every change, never cached.
type PricingResult struct {
	Subtotal     float64
	ShippingCost float64
	Total        float64
}

// Price derives the order totals from the cart.
func Price(items []store.CartItem) PricingResult {
	var subtotal float64
	saver := false
	for _, item := range items {
		subtotal += item.LineTotal()
		if item.Product.ShippingSaver {
			saver = true
		}
	}

	shipping := ShippingFee
	if saver || subtotal >= FreeShippingThreshold {
		shipping = 0
	}

	return PricingResult{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
	}
}
