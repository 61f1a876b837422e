// Package store models the storefront catalog and the commerce backend
// the checkout submits orders to.
package store

// Product is a catalog product (with or without variants).
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Brand        string        `json:"brand"`
	Price        float64       `json:"price"`
	RegularPrice float64       `json:"regular_price,omitempty"`
	Image        string        `json:"image"`
	Description  string        `json:"description"`
	Variants     []VariantType `json:"variants,omitempty"`
	// ShippingSaver products waive the flat shipping fee for the whole
	// order when present in the cart.
	ShippingSaver bool `json:"is_shipping_saver"`
}

// VariantType is one axis of product configuration (e.g. "Talla").
// Option order is the order the storefront presents them in; the first
// option is the default selection.
type VariantType struct {
	Name    string          `json:"name"`
	Options []VariantOption `json:"options"`
}

// VariantOption is one selectable value within a variant type.
type VariantOption struct {
	Value  string `json:"value"`
	Swatch string `json:"swatch,omitempty"` // hex color for swatch rendering
}

// CartItem is one cart line. CartItemID is distinct from the product
// identity: the same product selected with different variants appears as
// separate cart items.
type CartItem struct {
	CartItemID string
	Product    Product
	Quantity   int
}

// HasVariants returns true if the product is configurable.
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// OnSale returns true if the product carries a pre-discount price.
func (p *Product) OnSale() bool {
	return p.RegularPrice > 0 && p.RegularPrice != p.Price
}

// VariantType returns the variant type with the given name, or nil.
func (p *Product) VariantType(name string) *VariantType {
	for i := range p.Variants {
		if p.Variants[i].Name == name {
			return &p.Variants[i]
		}
	}
	return nil
}

// HasOption reports whether the variant type offers the given value.
func (t *VariantType) HasOption(value string) bool {
	for _, opt := range t.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// LineTotal returns price times quantity for a cart line.
func (ci *CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
