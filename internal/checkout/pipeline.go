package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucia/tienda-terminal-go/internal/store"
)

// State is the checkout pipeline state. Editing is initial; Redirecting
// is terminal (control leaves for the hosted payment page). Every
// non-success outcome returns to Editing with the form preserved.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateRedirecting
	StateFailed
)

// The single supported market. Both billing and shipping are pinned to
// it.
const countryCode = "ES"

// Fixed non-paid payment intent: the order is created unpaid and the
// shopper pays on the hosted payment page.
const (
	paymentMethod      = "pending"
	paymentMethodTitle = "Pago pendiente"
	customerNote       = "Pedido realizado desde la tienda de terminal (SSH)"
)

// ErrNoOrderIdentity marks a soft submission failure: the backend
// accepted the call but returned no usable order identity.
var ErrNoOrderIdentity = errors.New("order response carries no order id")

// ErrEmptyCart rejects submission of a cart with no items.
var ErrEmptyCart = errors.New("cart is empty")

// OrderCreator is the order-creation RPC consumed by the pipeline.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req store.OrderRequest) (*store.OrderResponse, error)
}

// Pipeline submits orders to the commerce backend and yields the hosted
// payment URL on success.
type Pipeline struct {
	backend OrderCreator
	domain  string
}

// New creates a checkout pipeline. domain is the storefront domain the
// payment-resume URL is built on.
func New(backend OrderCreator, domain string) *Pipeline {
	return &Pipeline{backend: backend, domain: domain}
}

// BuildOrderRequest projects the form and the cart into the backend
// order payload. Products whose id does not resolve to a backend id
// reject the whole build with store.ErrBadProductID; a malformed line
// item is never emitted.
func BuildOrderRequest(form ShippingContactForm, items []store.CartItem) (store.OrderRequest, error) {
	if len(items) == 0 {
		return store.OrderRequest{}, ErrEmptyCart
	}

	lastName := form.NormalizedLastName()
	lines := make([]store.OrderLineItem, 0, len(items))
	for _, item := range items {
		productID, err := store.BackendProductID(item.Product.ID)
		if err != nil {
			return store.OrderRequest{}, fmt.Errorf("line item %q: %w", item.CartItemID, err)
		}
		lines = append(lines, store.OrderLineItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	return store.OrderRequest{
		PaymentMethod:      paymentMethod,
		PaymentMethodTitle: paymentMethodTitle,
		SetPaid:            false,
		Billing: store.BillingAddress{
			FirstName: form.FirstName,
			LastName:  lastName,
			Address1:  form.Address,
			City:      form.City,
			Postcode:  form.Postcode,
			Country:   countryCode,
			Email:     form.Email,
			Phone:     form.Phone,
		},
		Shipping: store.ShippingAddress{
			FirstName: form.FirstName,
			LastName:  lastName,
			Address1:  form.Address,
			City:      form.City,
			Postcode:  form.Postcode,
			Country:   countryCode,
		},
		LineItems:    lines,
		CustomerNote: customerNote,
	}, nil
}

// Submit validates the form, builds the order request and sends it.
// On success it returns the payment-resume URL for the created order.
// Failures are classifiable with FailureKind; the caller keeps the form
// untouched so the shopper can retry.
func (p *Pipeline) Submit(ctx context.Context, form ShippingContactForm, items []store.CartItem) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	req, err := BuildOrderRequest(form, items)
	if err != nil {
		return "", err
	}

	resp, err := p.backend.CreateOrder(ctx, req)
	if err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}
	if !resp.Identifiable() {
		return "", ErrNoOrderIdentity
	}

	return store.PaymentResumeURL(p.domain, resp.ID, resp.OrderKey), nil
}

// FailureKind classifies a Submit error for user-facing reporting.
type FailureKind int

const (
	// FailureValidation: required contact fields missing; no RPC made.
	FailureValidation FailureKind = iota
	// FailureDataIntegrity: a cart item's product id does not resolve
	// to a backend id; no RPC made.
	FailureDataIntegrity
	// FailureSoft: the backend answered without a usable order identity.
	FailureSoft
	// FailureTransport: the order-creation call itself failed.
	FailureTransport
)

// ClassifyFailure maps a Submit error to its failure kind.
func ClassifyFailure(err error) FailureKind {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, ErrEmptyCart):
		return FailureValidation
	case errors.Is(err, store.ErrBadProductID):
		return FailureDataIntegrity
	case errors.Is(err, ErrNoOrderIdentity):
		return FailureSoft
	default:
		return FailureTransport
	}
}
