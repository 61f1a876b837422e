package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucia/tienda-terminal-go/internal/money"
	"github.com/lucia/tienda-terminal-go/internal/store"
)

// QuickView is the product quick-view overlay. It owns the variant
// selection for the presented product and emits its outcomes to the
// composing model through callbacks; it never touches the cart or the
// navigation state itself.
//
// The overlay holds a scoped claim on the cancel key (escape) while
// open. The claim is acquired on Present and released on every exit
// path - explicit close, re-presentation, add-to-cart - so repeated
// opens never stack handlers.
type QuickView struct {
	product   *store.Product
	selection map[string]string

	// focusRow is the variant type the left/right keys act on.
	focusRow int

	keysBound bool

	// Emitted callbacks, wired by the composing model.
	OnAddToCart   func(p store.Product, trigger string, selection map[string]string)
	OnGoToProduct func(p store.Product)
	OnClose       func()
}

// Trigger handle passed through OnAddToCart for the benefit of external
// visual feedback. Carries no semantics inside the overlay.
const quickViewAddTrigger = "quickview/add-to-cart"

// NewQuickView creates a closed overlay.
func NewQuickView() *QuickView {
	return &QuickView{}
}

// Active reports whether the overlay is open and holding the cancel-key
// claim.
func (q *QuickView) Active() bool {
	return q.keysBound
}

// Present opens the overlay for a product. Any prior selection is
// discarded and defaults are re-derived: each variant type starts on its
// first listed option. Presenting while already open re-uses the overlay
// for the new product; the key claim is released and re-acquired so it
// is never held twice.
func (q *QuickView) Present(p store.Product) {
	if q.keysBound {
		q.releaseKeys()
	}

	q.product = &p
	q.focusRow = 0
	if len(p.Variants) == 0 {
		q.selection = nil
	} else {
		q.selection = make(map[string]string, len(p.Variants))
		for _, vt := range p.Variants {
			if len(vt.Options) > 0 {
				q.selection[vt.Name] = vt.Options[0].Value
			}
		}
	}

	q.bindKeys()
}

// SelectOption replaces the chosen value for one variant type, leaving
// every other type untouched. Values come from the rendered option list
// and are trusted; re-selecting the current value is a no-op.
func (q *QuickView) SelectOption(typeName, value string) {
	if q.selection == nil {
		return
	}
	q.selection[typeName] = value
}

// Selection returns the current variant selection: nil for a product
// without variants, otherwise one chosen value per variant type.
func (q *QuickView) Selection() map[string]string {
	if q.product == nil || !q.product.HasVariants() {
		return nil
	}
	return q.selection
}

// Product returns the presented product, or nil when closed.
func (q *QuickView) Product() *store.Product {
	return q.product
}

// ConfirmAddToCart emits the presented product, the triggering control
// handle and the selection to the cart-mutation collaborator, then
// closes the overlay.
func (q *QuickView) ConfirmAddToCart() {
	if q.product == nil {
		return
	}
	p := *q.product
	sel := q.Selection()
	if q.OnAddToCart != nil {
		q.OnAddToCart(p, quickViewAddTrigger, sel)
	}
	q.Close()
}

// ConfirmGoToProduct signals the navigation collaborator and closes.
func (q *QuickView) ConfirmGoToProduct() {
	if q.product == nil {
		return
	}
	p := *q.product
	if q.OnGoToProduct != nil {
		q.OnGoToProduct(p)
	}
	q.Close()
}

// Close dismisses the overlay. The explicit close control, the cancel
// key and outside dismissal all converge here, so the key claim is
// released exactly once on every exit path.
func (q *QuickView) Close() {
	if !q.keysBound {
		return
	}
	q.releaseKeys()
	q.product = nil
	q.selection = nil
	if q.OnClose != nil {
		q.OnClose()
	}
}

func (q *QuickView) bindKeys()    { q.keysBound = true }
func (q *QuickView) releaseKeys() { q.keysBound = false }

// HandleKey processes a key press while the overlay is open.
func (q *QuickView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if q.product == nil {
		return nil
	}

	switch msg.String() {
	case "esc", "x":
		q.Close()

	case "up", "k":
		if q.focusRow > 0 {
			q.focusRow--
		}

	case "down", "j":
		if q.focusRow < len(q.product.Variants)-1 {
			q.focusRow++
		}

	case "left", "h":
		q.cycleOption(-1)

	case "right", "l":
		q.cycleOption(1)

	case "a", "enter":
		q.ConfirmAddToCart()

	case "v":
		q.ConfirmGoToProduct()
	}

	return nil
}

// cycleOption moves the focused variant type's selection by delta,
// wrapping around the option list.
func (q *QuickView) cycleOption(delta int) {
	if q.focusRow < 0 || q.focusRow >= len(q.product.Variants) {
		return
	}
	vt := q.product.Variants[q.focusRow]
	if len(vt.Options) == 0 {
		return
	}

	current := q.selection[vt.Name]
	idx := 0
	for i, opt := range vt.Options {
		if opt.Value == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(vt.Options)) % len(vt.Options)
	q.SelectOption(vt.Name, vt.Options[idx].Value)
}

// View renders the overlay.
func (q *QuickView) View(styles Styles, currency string) string {
	if q.product == nil {
		return ""
	}

	p := q.product
	var sb strings.Builder

	sb.WriteString(styles.ProductName.Render(p.Name))
	if p.Brand != "" {
		sb.WriteString("  ")
		sb.WriteString(styles.ProductBrand.Render(p.Brand))
	}
	sb.WriteString("\n\n")

	sb.WriteString(styles.Price.Render(money.FormatCurrency(p.Price, currency)))
	if p.OnSale() {
		sb.WriteString("  ")
		sb.WriteString(styles.RegularPrice.Render(money.FormatCurrency(p.RegularPrice, currency)))
	}
	if p.ShippingSaver {
		sb.WriteString("  ")
		sb.WriteString(styles.ShippingBadge.Render("envío gratis"))
	}
	sb.WriteString("\n")

	if desc := StripHTML(p.Description); desc != "" {
		sb.WriteString(styles.Description.Render(desc))
		sb.WriteString("\n")
	}

	for i, vt := range p.Variants {
		marker := "  "
		if i == q.focusRow {
			marker = styles.Highlight.Render("▸ ")
		}
		sb.WriteString("\n")
		sb.WriteString(marker)
		sb.WriteString(styles.VariantType.Render(vt.Name + ":"))
		sb.WriteString(" ")
		for _, opt := range vt.Options {
			label := opt.Value
			if opt.Swatch != "" {
				label = "■ " + label
			}
			if q.selection[vt.Name] == opt.Value {
				sb.WriteString(styles.VariantChosen.Render(label))
			} else {
				sb.WriteString(styles.VariantOption.Render(label))
			}
			sb.WriteString(" ")
		}
	}
	if len(p.Variants) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	help := "a/enter añadir a la cesta • v ver ficha • esc/x cerrar"
	if len(p.Variants) > 0 {
		help = "↑/↓ atributo • ←/→ opción • " + help
	}
	sb.WriteString(styles.HelpBar.Render(help))

	return styles.Overlay.Render(sb.String())
}
