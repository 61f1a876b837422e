package checkout

import (
	"errors"
	"testing"
)

func validForm() ShippingContactForm {
	return ShippingContactForm{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "García",
		Address:   "Calle Mayor 1",
		City:      "Madrid",
		Postcode:  "28001",
		Phone:     "600123456",
	}
}

func TestValidateComplete(t *testing.T) {
	f := validForm()
	if err := f.Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateLastNameCityPostcodeOptional(t *testing.T) {
	f := validForm()
	f.LastName = ""
	f.City = ""
	f.Postcode = ""

	if err := f.Validate(); err != nil {
		t.Fatalf("expected last name, city and postcode to be optional, got %v", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(*ShippingContactForm)
	}{
		{"email", func(f *ShippingContactForm) { f.Email = "" }},
		{"first name", func(f *ShippingContactForm) { f.FirstName = "" }},
		{"address", func(f *ShippingContactForm) { f.Address = "  " }},
		{"phone", func(f *ShippingContactForm) { f.Phone = "" }},
	}

	for _, tc := range cases {
		f := validForm()
		tc.mutate(&f)

		err := f.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected *ValidationError, got %T", tc.name, err)
			continue
		}
		if len(ve.Missing) != 1 || ve.Missing[0] != tc.name {
			t.Errorf("%s: expected missing %q, got %v", tc.name, tc.name, ve.Missing)
		}
	}
}

func TestNormalizedLastName(t *testing.T) {
	f := validForm()
	if got := f.NormalizedLastName(); got != "García" {
		t.Errorf("expected last name kept, got %q", got)
	}

	f.LastName = "  "
	if got := f.NormalizedLastName(); got != "." {
		t.Errorf("expected placeholder for empty last name, got %q", got)
	}
}
