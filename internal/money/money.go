// Package money formats prices for display.
package money

import "fmt"

// FormatCurrency renders an amount for the given ISO currency code.
// Pure formatting: no rounding beyond two decimals, no locale tables.
func FormatCurrency(amount float64, currency string) string {
	switch currency {
	case "EUR":
		return fmt.Sprintf("%.2f €", amount)
	case "USD":
		return fmt.Sprintf("$%.2f", amount)
	case "GBP":
		return fmt.Sprintf("£%.2f", amount)
	default:
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
}
