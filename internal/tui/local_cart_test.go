package tui

import (
	"testing"
)

func TestAddMergesSameProductAndSelection(t *testing.T) {
	cart := NewLocalCart()
	p := variantProduct()
	sel := map[string]string{"Talla": "M", "Color": "Azul"}

	cart.Add(p, sel, 1)
	cart.Add(p, map[string]string{"Color": "Azul", "Talla": "M"}, 2)

	if len(cart.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", cart.Lines[0].Quantity)
	}
	if cart.ItemCount() != 3 {
		t.Errorf("expected item count 3, got %d", cart.ItemCount())
	}
}

func TestAddSeparateLinesForDifferentSelections(t *testing.T) {
	cart := NewLocalCart()
	p := variantProduct()

	cart.Add(p, map[string]string{"Talla": "M", "Color": "Azul"}, 1)
	cart.Add(p, map[string]string{"Talla": "L", "Color": "Azul"}, 1)

	if len(cart.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(cart.Lines))
	}
	if cart.Lines[0].CartItemID == cart.Lines[1].CartItemID {
		t.Error("lines must get distinct cart item ids")
	}
}

func TestAddMergesNilSelection(t *testing.T) {
	cart := NewLocalCart()
	p := plainProduct()

	cart.Add(p, nil, 1)
	cart.Add(p, nil, 1)

	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Errorf("expected one line with quantity 2, got %+v", cart.Lines)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	cart := NewLocalCart()
	cart.Add(plainProduct(), nil, 2)

	if !cart.UpdateQuantity(0, 5) {
		t.Fatal("update failed")
	}
	if cart.Lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", cart.Lines[0].Quantity)
	}

	if !cart.UpdateQuantity(0, 0) {
		t.Fatal("removal via zero quantity failed")
	}
	if !cart.IsEmpty() {
		t.Error("expected empty cart")
	}

	if cart.UpdateQuantity(0, 1) {
		t.Error("expected out-of-range update to fail")
	}
}

func TestRemoveClampsSelection(t *testing.T) {
	cart := NewLocalCart()
	cart.Add(variantProduct(), map[string]string{"Talla": "S", "Color": "Azul"}, 1)
	cart.Add(plainProduct(), nil, 1)
	cart.SelectedIdx = 1

	if !cart.Remove(1) {
		t.Fatal("remove failed")
	}
	if cart.SelectedIdx != 0 {
		t.Errorf("expected selection clamped to 0, got %d", cart.SelectedIdx)
	}
	if line := cart.SelectedLine(); line == nil || line.Product.ID != "sim-101" {
		t.Errorf("unexpected selected line: %+v", line)
	}
}

func TestItemsProjection(t *testing.T) {
	cart := NewLocalCart()
	cart.Add(variantProduct(), map[string]string{"Talla": "M", "Color": "Azul"}, 2)
	cart.Add(plainProduct(), nil, 1)

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Product.ID != "sim-101" || items[0].Quantity != 2 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Product.ID != "wc-230" {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestDisplayNameFollowsVariantOrder(t *testing.T) {
	cart := NewLocalCart()
	cart.Add(variantProduct(), map[string]string{"Color": "Azul", "Talla": "M"}, 1)

	got := cart.Lines[0].DisplayName()
	want := "Camiseta (Talla: M, Color: Azul)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	cart.Add(plainProduct(), nil, 1)
	if got := cart.Lines[1].DisplayName(); got != "Bolsa" {
		t.Errorf("got %q, want %q", got, "Bolsa")
	}
}
