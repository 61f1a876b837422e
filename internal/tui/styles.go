// Package tui implements the terminal storefront using Bubble Tea.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - deep sea tones with amber accents
var (
	colorInk       = lipgloss.Color("#1B2A41")
	colorSand      = lipgloss.Color("#F2E9DC")
	colorAmber     = lipgloss.Color("#FFB347")
	colorSlate     = lipgloss.Color("#7D8CA3")
	colorHighlight = lipgloss.Color("#FF8C42")
	colorSuccess   = lipgloss.Color("#4CAF50")
	colorWarning   = lipgloss.Color("#FFC107")
	colorError     = lipgloss.Color("#F44336")
	colorMuted     = lipgloss.Color("#9E9E9E")
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// App container
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// List styles
	ListTitle lipgloss.Style

	// Product presentation
	ProductName   lipgloss.Style
	ProductBrand  lipgloss.Style
	Price         lipgloss.Style
	RegularPrice  lipgloss.Style
	Description   lipgloss.Style
	ShippingBadge lipgloss.Style
	VariantType   lipgloss.Style
	VariantOption lipgloss.Style
	VariantChosen lipgloss.Style

	// General
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Box       lipgloss.Style
	Overlay   lipgloss.Style
	HelpBar   lipgloss.Style
}

// DefaultStyles returns the default TUI styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorSlate).
			MarginBottom(1).
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true),

		ListTitle: lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true).
			MarginBottom(1),

		ProductName: lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true),

		ProductBrand: lipgloss.NewStyle().
			Foreground(colorSlate).
			Italic(true),

		Price: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		RegularPrice: lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true),

		Description: lipgloss.NewStyle().
			Foreground(colorSand).
			MarginTop(1).
			MarginBottom(1),

		ShippingBadge: lipgloss.NewStyle().
			Foreground(colorInk).
			Background(colorWarning).
			Padding(0, 1),

		VariantType: lipgloss.NewStyle().
			Foreground(colorSlate).
			Bold(true),

		VariantOption: lipgloss.NewStyle().
			Foreground(colorSand).
			Padding(0, 1),

		VariantChosen: lipgloss.NewStyle().
			Foreground(colorInk).
			Background(colorAmber).
			Bold(true).
			Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(colorMuted),

		Highlight: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(1, 2),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(colorAmber).
			Padding(1, 2),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
