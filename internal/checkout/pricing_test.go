package checkout

import (
	"testing"

	"github.com/lucia/tienda-terminal-go/internal/store"
)

func cartItem(id string, price float64, qty int, saver bool) store.CartItem {
	return store.CartItem{
		CartItemID: id,
		Product:    store.Product{ID: "sim-1", Name: "test", Price: price, ShippingSaver: saver},
		Quantity:   qty,
	}
}

func TestPriceAboveThreshold(t *testing.T) {
	// 20 x 2 = 40 >= 35: free shipping
	p := Price([]store.CartItem{cartItem("a", 20, 2, false)})

	if p.Subtotal != 40 {
		t.Errorf("expected subtotal 40, got %v", p.Subtotal)
	}
	if p.ShippingCost != 0 {
		t.Errorf("expected free shipping, got %v", p.ShippingCost)
	}
	if p.Total != 40 {
		t.Errorf("expected total 40, got %v", p.Total)
	}
}

func TestPriceBelowThreshold(t *testing.T) {
	p := Price([]store.CartItem{cartItem("a", 10, 1, false)})

	if p.Subtotal != 10 {
		t.Errorf("expected subtotal 10, got %v", p.Subtotal)
	}
	if p.ShippingCost != ShippingFee {
		t.Errorf("expected shipping %v, got %v", ShippingFee, p.ShippingCost)
	}
	if p.Total != 16 {
		t.Errorf("expected total 16, got %v", p.Total)
	}
}

func TestPriceShippingSaverWaivesFee(t *testing.T) {
	// A cheap shipping-saver item waives shipping regardless of subtotal.
	p := Price([]store.CartItem{cartItem("a", 5, 1, true)})

	if p.ShippingCost != 0 {
		t.Errorf("expected free shipping, got %v", p.ShippingCost)
	}
	if p.Total != 5 {
		t.Errorf("expected total 5, got %v", p.Total)
	}
}

func TestPriceSaverAppliesToWholeOrder(t *testing.T) {
	// Adding a shipping-saver to an under-threshold cart drives the
	// whole order's shipping to zero.
	items := []store.CartItem{
		cartItem("a", 10, 1, false),
		cartItem("b", 2, 1, true),
	}
	p := Price(items)

	if p.Subtotal != 12 {
		t.Errorf("expected subtotal 12, got %v", p.Subtotal)
	}
	if p.ShippingCost != 0 {
		t.Errorf("expected free shipping for whole order, got %v", p.ShippingCost)
	}
}

func TestPriceInvariants(t *testing.T) {
	carts := [][]store.CartItem{
		nil,
		{cartItem("a", 1, 1, false)},
		{cartItem("a", 34.99, 1, false)},
		{cartItem("a", 35, 1, false)},
		{cartItem("a", 17.5, 2, false)},
		{cartItem("a", 100, 3, false), cartItem("b", 0.5, 1, true)},
	}

	for i, items := range carts {
		p := Price(items)
		if p.Total != p.Subtotal+p.ShippingCost {
			t.Errorf("cart %d: total %v != subtotal %v + shipping %v", i, p.Total, p.Subtotal, p.ShippingCost)
		}
		if p.ShippingCost != 0 && p.ShippingCost != ShippingFee {
			t.Errorf("cart %d: shipping cost %v is neither 0 nor %v", i, p.ShippingCost, ShippingFee)
		}
	}
}

func TestPriceExactThreshold(t *testing.T) {
	p := Price([]store.CartItem{cartItem("a", FreeShippingThreshold, 1, false)})
	if p.ShippingCost != 0 {
		t.Errorf("expected free shipping at exactly the threshold, got %v", p.ShippingCost)
	}
}
