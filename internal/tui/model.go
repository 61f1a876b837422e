package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucia/tienda-terminal-go/internal/cache"
	"github.com/lucia/tienda-terminal-go/internal/checkout"
	"github.com/lucia/tienda-terminal-go/internal/money"
	"github.com/lucia/tienda-terminal-go/internal/store"
)

// ViewState represents the current view in the application.
type ViewState int

const (
	ViewListing ViewState = iota
	ViewDetail
	ViewCart
	ViewCheckout
	ViewRedirect
)

// catalogCacheKey keys the shared catalog cache.
const catalogCacheKey = "catalog"

// flashState carries the transient add-to-cart feedback. The trigger
// handle from the overlay rides along so the feedback can name its
// origin; it has no other meaning here.
type flashState struct {
	text    string
	trigger string
}

// navSignal is written by the overlay's navigation callbacks and
// consumed by Update after the overlay handled a key.
type navSignal struct {
	pending bool
	view    ViewState
	product *store.Product
}

// Model is the main Bubble Tea model for the storefront.
type Model struct {
	// Dependencies
	backend      *store.Client
	pipeline     *checkout.Pipeline
	catalogCache *cache.Cache[string, []store.Product]
	currency     string

	// View state
	viewState ViewState
	width     int
	height    int
	styles    Styles

	// Listing view
	productList    list.Model
	products       []store.Product
	loadingCatalog bool
	spin           spinner.Model

	// Quick-view overlay
	quickView *QuickView
	flash     *flashState
	nav       *navSignal

	// Detail view
	detailProduct *store.Product

	// Session cart
	cart *LocalCart

	// Checkout
	contact        *checkout.ShippingContactForm
	contactForm    *huh.Form
	checkoutState  checkout.State
	checkoutNotice string
	paymentURL     string

	// Error handling
	err error
}

// productItem implements list.Item for catalog products.
type productItem struct {
	product  store.Product
	currency string
}

func (i productItem) Title() string {
	return i.product.Name
}

func (i productItem) Description() string {
	price := money.FormatCurrency(i.product.Price, i.currency)
	extras := ""
	if i.product.OnSale() {
		extras += " • oferta"
	}
	if i.product.ShippingSaver {
		extras += " • envío gratis"
	}
	if i.product.HasVariants() {
		extras += " • variantes"
	}
	return fmt.Sprintf("%s (%s)%s", price, i.product.Brand, extras)
}

func (i productItem) FilterValue() string {
	return i.product.Name + " " + i.product.Brand
}

// Messages
type (
	catalogLoadedMsg struct {
		products []store.Product
	}
	orderCreatedMsg struct {
		paymentURL string
	}
	orderFailedMsg struct {
		err error
	}
	errMsg struct {
		err error
	}
)

// NewModel creates the storefront model. domain is the public storefront
// domain the payment-resume URL is built on.
func NewModel(backend *store.Client, catalogCache *cache.Cache[string, []store.Product], domain, currency string) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAmber)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorHighlight).
		BorderLeftForeground(colorHighlight)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorSlate).
		BorderLeftForeground(colorHighlight)

	productList := list.New([]list.Item{}, delegate, 0, 0)
	productList.Title = "Catálogo"
	productList.SetShowHelp(false)
	productList.SetFilteringEnabled(true)
	productList.Styles.Title = styles.ListTitle

	cart := NewLocalCart()
	flash := &flashState{}
	nav := &navSignal{}

	qv := NewQuickView()
	qv.OnAddToCart = func(p store.Product, trigger string, selection map[string]string) {
		cart.Add(p, selection, 1)
		flash.text = fmt.Sprintf("%s añadido a la cesta", p.Name)
		flash.trigger = trigger
	}
	qv.OnGoToProduct = func(p store.Product) {
		nav.pending = true
		nav.view = ViewDetail
		nav.product = &p
	}
	qv.OnClose = func() {}

	return Model{
		backend:      backend,
		pipeline:     checkout.New(backend, domain),
		catalogCache: catalogCache,
		currency:     currency,
		viewState:    ViewListing,
		styles:       styles,
		productList:  productList,
		spin:         sp,
		quickView:    qv,
		flash:        flash,
		nav:          nav,
		cart:         cart,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.loadCatalog(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.productList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	case catalogLoadedMsg:
		m.loadingCatalog = false
		m.err = nil
		m.products = msg.products
		m.updateProductList()

	case orderCreatedMsg:
		// Drop stale resolutions: only an in-flight submission on the
		// checkout page may redirect.
		if m.viewState == ViewCheckout && m.checkoutState == checkout.StateSubmitting {
			m.checkoutState = checkout.StateRedirecting
			m.paymentURL = msg.paymentURL
			m.viewState = ViewRedirect
		}

	case orderFailedMsg:
		if m.viewState == ViewCheckout && m.checkoutState == checkout.StateSubmitting {
			// Back to editing with the form preserved, submission
			// re-enabled, and a message matched to the failure.
			m.checkoutState = checkout.StateEditing
			m.checkoutNotice = failureMessage(msg.err)
			m.rebuildContactForm()
			if m.contactForm != nil {
				cmds = append(cmds, m.contactForm.Init())
			}
		}

	case errMsg:
		m.err = msg.err
		m.loadingCatalog = false
	}

	// Route remaining messages to the active sub-model.
	if m.viewState == ViewListing && !m.quickView.Active() {
		var cmd tea.Cmd
		m.productList, cmd = m.productList.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.viewState == ViewCheckout && m.contactForm != nil && m.checkoutState == checkout.StateEditing {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			form, cmd := m.contactForm.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.contactForm = f
			}
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// The overlay holds the cancel-key claim while open.
	if m.quickView.Active() {
		cmd := m.quickView.HandleKey(msg)
		m.consumeNav()
		return m, cmd
	}

	switch m.viewState {
	case ViewListing:
		return m.handleListingKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewCart:
		return m.handleCartKeys(msg)
	case ViewCheckout:
		return m.handleCheckoutKeys(msg)
	case ViewRedirect:
		return m.handleRedirectKeys(msg)
	}

	return m, nil
}

// consumeNav applies a navigation request emitted by the overlay.
func (m *Model) consumeNav() {
	if !m.nav.pending {
		return
	}
	m.viewState = m.nav.view
	if m.nav.view == ViewDetail {
		m.detailProduct = m.nav.product
	}
	m.nav.pending = false
	m.nav.product = nil
}

func (m Model) handleListingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list's filter input capture keys while filtering.
	if m.productList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.productList, cmd = m.productList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "r":
		m.loadingCatalog = true
		m.catalogCache.Delete(catalogCacheKey)
		return m, m.loadCatalog()

	case "c":
		m.viewState = ViewCart
		m.cart.SelectedIdx = 0
		return m, nil

	case "enter":
		if item, ok := m.productList.SelectedItem().(productItem); ok {
			m.flash.text = ""
			m.quickView.Present(item.product)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.productList, cmd = m.productList.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewState = ViewListing
		m.detailProduct = nil

	case "a":
		if m.detailProduct != nil {
			m.quickView.Present(*m.detailProduct)
		}

	case "c":
		m.viewState = ViewCart
		m.cart.SelectedIdx = 0
	}
	return m, nil
}

func (m Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "s":
		m.viewState = ViewListing

	case "up", "k":
		m.cart.MoveUp()

	case "down", "j":
		m.cart.MoveDown()

	case "+", "=":
		if line := m.cart.SelectedLine(); line != nil {
			m.cart.UpdateQuantity(m.cart.SelectedIdx, line.Quantity+1)
		}

	case "-":
		if line := m.cart.SelectedLine(); line != nil {
			m.cart.UpdateQuantity(m.cart.SelectedIdx, line.Quantity-1)
		}

	case "d", "delete":
		m.cart.Remove(m.cart.SelectedIdx)

	case "o", "enter":
		// The checkout page mounts with a fresh, empty contact form.
		m.viewState = ViewCheckout
		m.checkoutState = checkout.StateEditing
		m.checkoutNotice = ""
		m.contact = &checkout.ShippingContactForm{}
		m.rebuildContactForm()
		if m.contactForm != nil {
			return m, m.contactForm.Init()
		}
	}
	return m, nil
}

func (m Model) handleCheckoutKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Empty-cart short-circuit: only the recovery affordance is live.
	if m.cart.IsEmpty() {
		switch msg.String() {
		case "enter", "esc":
			m.viewState = ViewListing
		}
		return m, nil
	}

	// While a submission is in flight the submit control is disabled:
	// no key reaches the form, preventing duplicate submissions.
	if m.checkoutState == checkout.StateSubmitting {
		return m, nil
	}

	if msg.String() == "esc" {
		m.viewState = ViewCart
		m.contactForm = nil
		m.contact = nil
		m.checkoutNotice = ""
		return m, nil
	}

	if m.contactForm != nil {
		form, cmd := m.contactForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.contactForm = f
		}
		if m.contactForm.State == huh.StateCompleted {
			return m.attemptSubmit()
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleRedirectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "q", "esc":
		// Control was handed to the hosted payment page; this session
		// starts over.
		m.cart.Clear()
		m.contact = nil
		m.contactForm = nil
		m.paymentURL = ""
		m.checkoutState = checkout.StateEditing
		m.viewState = ViewListing
	}
	return m, nil
}

// attemptSubmit runs the validation gate and, when it passes, moves the
// pipeline to Submitting and fires the order-creation command. A blocked
// submission shows the reason and stays in Editing with the form intact.
func (m Model) attemptSubmit() (tea.Model, tea.Cmd) {
	form := *m.contact
	items := m.cart.Items()

	if err := form.Validate(); err != nil {
		m.checkoutNotice = failureMessage(err)
		m.rebuildContactForm()
		return m, m.contactForm.Init()
	}
	if _, err := checkout.BuildOrderRequest(form, items); err != nil {
		m.checkoutNotice = failureMessage(err)
		m.rebuildContactForm()
		return m, m.contactForm.Init()
	}

	m.checkoutState = checkout.StateSubmitting
	m.checkoutNotice = ""
	return m, tea.Batch(m.spin.Tick, m.submitOrder(form, items))
}

// submitOrder is the single suspension point of the checkout: the
// order-creation RPC, awaited as a command.
func (m Model) submitOrder(form checkout.ShippingContactForm, items []store.CartItem) tea.Cmd {
	pipeline := m.pipeline
	return func() tea.Msg {
		url, err := pipeline.Submit(context.Background(), form, items)
		if err != nil {
			return orderFailedMsg{err: err}
		}
		return orderCreatedMsg{paymentURL: url}
	}
}

// rebuildContactForm re-creates the huh form bound to the current
// contact data, so values survive validation failures and failed
// submissions.
func (m *Model) rebuildContactForm() {
	if m.contact == nil {
		return
	}
	c := m.contact
	m.contactForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&c.Email),
			huh.NewInput().Title("Nombre").Value(&c.FirstName),
			huh.NewInput().Title("Apellidos (opcional)").Value(&c.LastName),
			huh.NewInput().Title("Teléfono").Value(&c.Phone),
		),
		huh.NewGroup(
			huh.NewInput().Title("Dirección").Value(&c.Address),
			huh.NewInput().Title("Ciudad").Value(&c.City),
			huh.NewInput().Title("Código postal").Value(&c.Postcode),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// failureMessage maps a checkout error to its user-facing message.
func failureMessage(err error) string {
	switch checkout.ClassifyFailure(err) {
	case checkout.FailureValidation:
		return fmt.Sprintf("Faltan datos obligatorios: %v", err)
	case checkout.FailureDataIntegrity:
		return "Un artículo de la cesta no es válido. Elimínalo e inténtalo de nuevo."
	case checkout.FailureSoft:
		return "No se pudo confirmar el pedido. Comprueba tu conexión e inténtalo de nuevo."
	default:
		return "Error al enviar el pedido. Inténtalo de nuevo en unos minutos."
	}
}

func (m *Model) updateProductList() {
	items := make([]list.Item, len(m.products))
	for i, p := range m.products {
		items[i] = productItem{product: p, currency: m.currency}
	}
	m.productList.SetItems(items)
}

// loadCatalog fetches the catalog, via the shared TTL cache.
func (m Model) loadCatalog() tea.Cmd {
	backend := m.backend
	catalogCache := m.catalogCache
	return func() tea.Msg {
		if products, ok := catalogCache.Get(catalogCacheKey); ok {
			return catalogLoadedMsg{products: products}
		}

		products, err := backend.GetCatalog(context.Background())
		if err != nil {
			return errMsg{err: err}
		}

		catalogCache.Set(catalogCacheKey, products)
		return catalogLoadedMsg{products: products}
	}
}

// View renders the current view.
func (m Model) View() string {
	if m.width == 0 {
		return "Cargando..."
	}

	// The overlay floats above whatever view opened it.
	if m.quickView.Active() {
		var sb strings.Builder
		sb.WriteString(m.styles.Header.Render(m.styles.HeaderTitle.Render("Tienda")))
		sb.WriteString("\n")
		sb.WriteString(m.quickView.View(m.styles, m.currency))
		return m.styles.App.Render(sb.String())
	}

	var content string
	switch m.viewState {
	case ViewListing:
		content = m.viewListing()
	case ViewDetail:
		content = m.viewDetail()
	case ViewCart:
		content = m.viewCart()
	case ViewCheckout:
		content = m.viewCheckout()
	case ViewRedirect:
		content = m.viewRedirect()
	}

	return m.styles.App.Render(content)
}

func (m Model) viewListing() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.styles.HeaderTitle.Render("Tienda")))
	sb.WriteString("\n")

	if m.loadingCatalog {
		sb.WriteString(m.spin.View())
		sb.WriteString(" Cargando catálogo...")
	} else if m.err != nil {
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		sb.WriteString(m.productList.View())
	}

	if m.flash.text != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Success.Render("✓ " + m.flash.text))
	}

	cartInfo := ""
	if m.cart.ItemCount() > 0 {
		pricing := checkout.Price(m.cart.Items())
		cartInfo = fmt.Sprintf(" • cesta: %d (%s)", m.cart.ItemCount(), money.FormatCurrency(pricing.Subtotal, m.currency))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("/ filtrar • r recargar • enter vista rápida • c cesta • q salir" + cartInfo))

	return sb.String()
}

func (m Model) viewDetail() string {
	if m.detailProduct == nil {
		return "Sin producto seleccionado"
	}

	p := m.detailProduct
	var sb strings.Builder

	sb.WriteString(m.styles.ProductName.Render(p.Name))
	sb.WriteString("\n")
	if p.Brand != "" {
		sb.WriteString(m.styles.ProductBrand.Render(p.Brand))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Price.Render(money.FormatCurrency(p.Price, m.currency)))
	if p.OnSale() {
		sb.WriteString("  ")
		sb.WriteString(m.styles.RegularPrice.Render(money.FormatCurrency(p.RegularPrice, m.currency)))
	}
	if p.ShippingSaver {
		sb.WriteString("  ")
		sb.WriteString(m.styles.ShippingBadge.Render("envío gratis"))
	}
	sb.WriteString("\n")

	if desc := StripHTML(p.Description); desc != "" {
		sb.WriteString(m.styles.Description.Render(desc))
		sb.WriteString("\n")
	}

	if len(p.Variants) > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render("Opciones disponibles:"))
		sb.WriteString("\n")
		for _, vt := range p.Variants {
			values := make([]string, len(vt.Options))
			for i, opt := range vt.Options {
				values[i] = opt.Value
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", vt.Name, strings.Join(values, ", ")))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("a añadir • c cesta • esc volver"))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewCart() string {
	var sb strings.Builder

	sb.WriteString(m.styles.HeaderTitle.Render("Cesta"))
	sb.WriteString("\n\n")

	if m.cart.IsEmpty() {
		sb.WriteString(m.styles.Subtle.Render("Tu cesta está vacía"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.HelpBar.Render("esc volver al catálogo"))
		return m.styles.Box.Render(sb.String())
	}

	for i, line := range m.cart.Lines {
		prefix := "  "
		if i == m.cart.SelectedIdx {
			prefix = m.styles.Highlight.Render("▸ ")
		}
		entry := fmt.Sprintf("%s%s  %s  x%d  = %s",
			prefix,
			line.DisplayName(),
			money.FormatCurrency(line.Product.Price, m.currency),
			line.Quantity,
			money.FormatCurrency(line.LineTotal(), m.currency),
		)
		if i == m.cart.SelectedIdx {
			sb.WriteString(m.styles.Highlight.Render(entry))
		} else {
			sb.WriteString(entry)
		}
		sb.WriteString("\n")
	}

	// Totals, rederived from the cart on every render.
	pricing := checkout.Price(m.cart.Items())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Subtotal: %s\n", money.FormatCurrency(pricing.Subtotal, m.currency)))
	if pricing.ShippingCost == 0 {
		sb.WriteString(m.styles.Success.Render("Envío: gratis"))
	} else {
		sb.WriteString(fmt.Sprintf("Envío: %s", money.FormatCurrency(pricing.ShippingCost, m.currency)))
		missing := checkout.FreeShippingThreshold - pricing.Subtotal
		sb.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  (gratis a partir de %s, te faltan %s)",
			money.FormatCurrency(checkout.FreeShippingThreshold, m.currency),
			money.FormatCurrency(missing, m.currency))))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Price.Render(fmt.Sprintf("Total: %s", money.FormatCurrency(pricing.Total, m.currency))))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.HelpBar.Render("↑/↓ elegir • +/- cantidad • d eliminar • o tramitar pedido • esc volver"))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewCheckout() string {
	var sb strings.Builder

	sb.WriteString(m.styles.HeaderTitle.Render("Finalizar compra"))
	sb.WriteString("\n\n")

	// Empty-cart short-circuit: never render the form.
	if m.cart.IsEmpty() {
		sb.WriteString(m.styles.Subtle.Render("No hay artículos en la cesta."))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.HelpBar.Render("enter volver al catálogo"))
		return m.styles.Box.Render(sb.String())
	}

	pricing := checkout.Price(m.cart.Items())
	for _, line := range m.cart.Lines {
		sb.WriteString(fmt.Sprintf("  • %s x%d = %s\n", line.DisplayName(), line.Quantity, money.FormatCurrency(line.LineTotal(), m.currency)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Subtotal: %s\n", money.FormatCurrency(pricing.Subtotal, m.currency)))
	if pricing.ShippingCost == 0 {
		sb.WriteString("Envío: gratis\n")
	} else {
		sb.WriteString(fmt.Sprintf("Envío: %s\n", money.FormatCurrency(pricing.ShippingCost, m.currency)))
	}
	sb.WriteString(m.styles.Price.Render(fmt.Sprintf("Total: %s", money.FormatCurrency(pricing.Total, m.currency))))
	sb.WriteString("\n\n")

	if m.checkoutState == checkout.StateSubmitting {
		sb.WriteString(m.spin.View())
		sb.WriteString(" Enviando pedido...")
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render("El envío está deshabilitado mientras se procesa."))
		return m.styles.Box.Render(sb.String())
	}

	if m.checkoutNotice != "" {
		sb.WriteString(m.styles.Error.Render(m.checkoutNotice))
		sb.WriteString("\n\n")
	}

	if m.contactForm != nil {
		sb.WriteString(m.styles.Subtle.Render("Datos de contacto y envío:"))
		sb.WriteString("\n")
		sb.WriteString(m.contactForm.View())
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.HelpBar.Render("tab siguiente campo • enter enviar • esc volver a la cesta"))

	return m.styles.Box.Render(sb.String())
}

func (m Model) viewRedirect() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Success.Render("✓ Pedido creado"))
	sb.WriteString("\n\n")
	sb.WriteString("Completa el pago en la página segura de pago:")
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Highlight.Render("  " + m.paymentURL))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Subtle.Render("Los datos de tu tarjeta se introducen únicamente en esa página."))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.HelpBar.Render("enter seguir comprando"))

	return m.styles.Box.Render(sb.String())
}

// PaymentURL returns the payment-resume URL after a successful
// submission (for testing).
func (m Model) PaymentURL() string {
	return m.paymentURL
}

// CurrentView returns the current view state (for testing).
func (m Model) CurrentView() ViewState {
	return m.viewState
}

// CheckoutState returns the checkout pipeline state (for testing).
func (m Model) CheckoutState() checkout.State {
	return m.checkoutState
}
