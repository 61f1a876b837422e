package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Catalog product IDs carry a prefix telling where they came from:
// seeded demo products use "sim-", products mirrored from the commerce
// backend use "wc-". The remainder is the backend's numeric product id.
const (
	SimulatedIDPrefix   = "sim-"
	ExternalRefIDPrefix = "wc-"
)

// ErrBadProductID is returned when a catalog product id does not resolve
// to a positive backend product id. Submissions carrying such an item
// must be rejected before any order is sent.
var ErrBadProductID = errors.New("product id does not resolve to a backend id")

// BackendProductID strips the known id prefixes and parses the remainder
// as the commerce backend's numeric product id.
func BackendProductID(id string) (int, error) {
	raw := strings.TrimPrefix(id, SimulatedIDPrefix)
	raw = strings.TrimPrefix(raw, ExternalRefIDPrefix)

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadProductID, id)
	}
	return n, nil
}

// OrderRequest is the commerce backend order payload. It is built once
// at submission time and never mutated afterwards.
type OrderRequest struct {
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodTitle string          `json:"payment_method_title"`
	SetPaid            bool            `json:"set_paid"`
	Billing            BillingAddress  `json:"billing"`
	Shipping           ShippingAddress `json:"shipping"`
	LineItems          []OrderLineItem `json:"line_items"`
	CustomerNote       string          `json:"customer_note"`
}

// BillingAddress is the billing block of an order.
type BillingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingAddress is the shipping block of an order.
type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// OrderLineItem is one order line, keyed by the backend product id.
type OrderLineItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// OrderResponse is the backend's answer to order creation. An absent ID
// means the order cannot be resumed for payment and the attempt is a
// soft failure.
type OrderResponse struct {
	ID       int    `json:"id"`
	Status   string `json:"status"`
	OrderKey string `json:"order_key"`
}

// Identifiable returns true if the response carries what the hosted
// payment page needs.
func (r *OrderResponse) Identifiable() bool {
	return r != nil && r.ID > 0
}

// PaymentResumeURL builds the hosted payment page address for a created
// order. The format is a hard compatibility contract with the commerce
// backend and must not change.
func PaymentResumeURL(domain string, orderID int, orderKey string) string {
	return fmt.Sprintf("https://%s/finalizar-compra/order-pay/%d/?pay_for_order=true&key=%s", domain, orderID, orderKey)
}
