package checkout

import (
	"fmt"
	"strings"
)

// ShippingContactForm holds the contact details collected on the
// checkout page. It lives for the duration of one checkout attempt and
// is never persisted.
type ShippingContactForm struct {
	Email     string
	FirstName string
	LastName  string
	Address   string
	City      string
	Postcode  string
	Phone     string
}

// lastNamePlaceholder substitutes an empty last name; the backend
// rejects empty name fields.
const lastNamePlaceholder = "."

// ValidationError reports the required fields missing at the submission
// gate. City and postcode are collected but never required.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks the submission gate: email, first name, address and
// phone must be non-empty. Last name is optional.
func (f *ShippingContactForm) Validate() error {
	var missing []string
	for _, field := range []struct {
		name, value string
	}{
		{"email", f.Email},
		{"first name", f.FirstName},
		{"address", f.Address},
		{"phone", f.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// NormalizedLastName returns the last name, or the placeholder when the
// shopper left it empty.
func (f *ShippingContactForm) NormalizedLastName() string {
	if strings.TrimSpace(f.LastName) == "" {
		return lastNamePlaceholder
	}
	return f.LastName
}
