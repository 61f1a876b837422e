package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/lucia/tienda-terminal-go/internal/store"
)

// fakeBackend records the last order request and returns a canned
// response or error.
type fakeBackend struct {
	lastReq *store.OrderRequest
	resp    *store.OrderResponse
	err     error
}

func (f *fakeBackend) CreateOrder(ctx context.Context, req store.OrderRequest) (*store.OrderResponse, error) {
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func testItems() []store.CartItem {
	return []store.CartItem{
		{
			CartItemID: "sim-101#1",
			Product:    store.Product{ID: "sim-101", Name: "Camiseta", Price: 12.95},
			Quantity:   2,
		},
		{
			CartItemID: "wc-230#2",
			Product:    store.Product{ID: "wc-230", Name: "Bolsa", Price: 4.5, ShippingSaver: true},
			Quantity:   1,
		},
	}
}

func TestBuildOrderRequest(t *testing.T) {
	form := validForm()
	req, err := BuildOrderRequest(form, testItems())
	if err != nil {
		t.Fatalf("BuildOrderRequest failed: %v", err)
	}

	if req.SetPaid {
		t.Error("expected set_paid to be false")
	}
	if req.PaymentMethod == "" || req.PaymentMethodTitle == "" {
		t.Error("expected a payment intent marker")
	}
	if req.CustomerNote == "" {
		t.Error("expected a customer note naming the channel")
	}

	if req.Billing.Country != "ES" || req.Shipping.Country != "ES" {
		t.Errorf("expected country ES in both blocks, got %q/%q", req.Billing.Country, req.Shipping.Country)
	}
	if req.Billing.Email != form.Email || req.Billing.Phone != form.Phone {
		t.Error("billing block does not carry the contact details")
	}
	if req.Shipping.FirstName != form.FirstName || req.Shipping.Address1 != form.Address {
		t.Error("shipping block does not carry the contact details")
	}

	if len(req.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(req.LineItems))
	}
	if req.LineItems[0].ProductID != 101 || req.LineItems[0].Quantity != 2 {
		t.Errorf("line 0: expected product 101 x2, got %d x%d", req.LineItems[0].ProductID, req.LineItems[0].Quantity)
	}
	if req.LineItems[1].ProductID != 230 || req.LineItems[1].Quantity != 1 {
		t.Errorf("line 1: expected product 230 x1, got %d x%d", req.LineItems[1].ProductID, req.LineItems[1].Quantity)
	}
}

func TestBuildOrderRequestNormalizesLastName(t *testing.T) {
	form := validForm()
	form.LastName = ""

	req, err := BuildOrderRequest(form, testItems())
	if err != nil {
		t.Fatalf("BuildOrderRequest failed: %v", err)
	}

	if req.Billing.LastName != "." || req.Shipping.LastName != "." {
		t.Errorf("expected placeholder last name, got %q/%q", req.Billing.LastName, req.Shipping.LastName)
	}
}

func TestBuildOrderRequestRejectsBadProductID(t *testing.T) {
	items := testItems()
	items[1].Product.ID = "sim-abc"

	_, err := BuildOrderRequest(validForm(), items)
	if !errors.Is(err, store.ErrBadProductID) {
		t.Fatalf("expected ErrBadProductID, got %v", err)
	}
}

func TestBuildOrderRequestEmptyCart(t *testing.T) {
	_, err := BuildOrderRequest(validForm(), nil)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitSuccess(t *testing.T) {
	backend := &fakeBackend{resp: &store.OrderResponse{ID: 123, Status: "pending", OrderKey: "abc"}}
	p := New(backend, "tienda.example.com")

	url, err := p.Submit(context.Background(), validForm(), testItems())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	want := "https://tienda.example.com/finalizar-compra/order-pay/123/?pay_for_order=true&key=abc"
	if url != want {
		t.Errorf("payment URL mismatch:\n got %s\nwant %s", url, want)
	}
	if backend.lastReq == nil {
		t.Fatal("expected the backend to receive the order")
	}
}

func TestSubmitSoftFailure(t *testing.T) {
	// Backend answered but without an order id.
	backend := &fakeBackend{resp: &store.OrderResponse{}}
	p := New(backend, "tienda.example.com")

	_, err := p.Submit(context.Background(), validForm(), testItems())
	if !errors.Is(err, ErrNoOrderIdentity) {
		t.Fatalf("expected ErrNoOrderIdentity, got %v", err)
	}
	if ClassifyFailure(err) != FailureSoft {
		t.Errorf("expected soft failure classification")
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}
	p := New(backend, "tienda.example.com")

	_, err := p.Submit(context.Background(), validForm(), testItems())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if ClassifyFailure(err) != FailureTransport {
		t.Errorf("expected transport failure classification, got %v", ClassifyFailure(err))
	}
}

func TestSubmitValidationBlocksRPC(t *testing.T) {
	backend := &fakeBackend{resp: &store.OrderResponse{ID: 1, OrderKey: "k"}}
	p := New(backend, "tienda.example.com")

	form := validForm()
	form.Email = ""

	_, err := p.Submit(context.Background(), form, testItems())
	if err == nil {
		t.Fatal("expected validation error")
	}
	if ClassifyFailure(err) != FailureValidation {
		t.Errorf("expected validation classification")
	}
	if backend.lastReq != nil {
		t.Error("validation failure must not reach the backend")
	}
}

func TestSubmitBadProductIDBlocksRPC(t *testing.T) {
	backend := &fakeBackend{resp: &store.OrderResponse{ID: 1, OrderKey: "k"}}
	p := New(backend, "tienda.example.com")

	items := testItems()
	items[0].Product.ID = "garbage"

	_, err := p.Submit(context.Background(), validForm(), items)
	if !errors.Is(err, store.ErrBadProductID) {
		t.Fatalf("expected ErrBadProductID, got %v", err)
	}
	if ClassifyFailure(err) != FailureDataIntegrity {
		t.Errorf("expected data integrity classification")
	}
	if backend.lastReq != nil {
		t.Error("a malformed line item must never be sent")
	}
}
