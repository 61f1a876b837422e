package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucia/tienda-terminal-go/internal/store"
)

// CartLine is one cart entry together with the variant selection it was
// added with. The same product added with a different selection becomes
// a separate line with its own cart item id.
type CartLine struct {
	store.CartItem
	Selection map[string]string
}

// LocalCart holds the per-SSH-session cart. The TUI model owns it; the
// checkout pipeline only reads the projected items.
type LocalCart struct {
	Lines       []CartLine
	SelectedIdx int
	nextID      int
}

// NewLocalCart creates a new empty cart.
func NewLocalCart() *LocalCart {
	return &LocalCart{}
}

// Add puts a product in the cart. An existing line for the same product
// and selection gets its quantity bumped; otherwise a new line is
// appended with a fresh cart item id.
func (c *LocalCart) Add(p store.Product, selection map[string]string, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID && selectionEqual(c.Lines[i].Selection, selection) {
			c.Lines[i].Quantity += quantity
			return
		}
	}

	c.nextID++
	c.Lines = append(c.Lines, CartLine{
		CartItem: store.CartItem{
			CartItemID: fmt.Sprintf("%s#%d", p.ID, c.nextID),
			Product:    p,
			Quantity:   quantity,
		},
		Selection: selection,
	})
}

// UpdateQuantity sets the quantity of a line by index. Zero or less
// removes the line.
func (c *LocalCart) UpdateQuantity(index, quantity int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	if quantity <= 0 {
		return c.Remove(index)
	}
	c.Lines[index].Quantity = quantity
	return true
}

// Remove deletes a line by index.
func (c *LocalCart) Remove(index int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	if c.SelectedIdx >= len(c.Lines) && len(c.Lines) > 0 {
		c.SelectedIdx = len(c.Lines) - 1
	}
	return true
}

// Clear empties the cart.
func (c *LocalCart) Clear() {
	c.Lines = nil
	c.SelectedIdx = 0
}

// IsEmpty returns true if the cart has no lines.
func (c *LocalCart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the total quantity across all lines.
func (c *LocalCart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Items projects the cart for the checkout pipeline.
func (c *LocalCart) Items() []store.CartItem {
	items := make([]store.CartItem, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = line.CartItem
	}
	return items
}

// SelectedLine returns the currently highlighted line, or nil.
func (c *LocalCart) SelectedLine() *CartLine {
	if c.SelectedIdx < 0 || c.SelectedIdx >= len(c.Lines) {
		return nil
	}
	return &c.Lines[c.SelectedIdx]
}

// MoveUp moves the selection up.
func (c *LocalCart) MoveUp() {
	if c.SelectedIdx > 0 {
		c.SelectedIdx--
	}
}

// MoveDown moves the selection down.
func (c *LocalCart) MoveDown() {
	if c.SelectedIdx < len(c.Lines)-1 {
		c.SelectedIdx++
	}
}

// DisplayName renders the line's product name with its selection, e.g.
// "Camiseta básica (Talla: M, Color: Azul)".
func (line *CartLine) DisplayName() string {
	if len(line.Selection) == 0 {
		return line.Product.Name
	}

	// Variant order follows the product definition, not map iteration.
	parts := make([]string, 0, len(line.Selection))
	for _, vt := range line.Product.Variants {
		if v, ok := line.Selection[vt.Name]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", vt.Name, v))
		}
	}
	return fmt.Sprintf("%s (%s)", line.Product.Name, strings.Join(parts, ", "))
}

// selectionEqual compares two variant selections for equality.
func selectionEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bv, ok := b[k]
		if !ok || a[k] != bv {
			return false
		}
	}
	return true
}
