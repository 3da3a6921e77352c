// Package address provides the delivery address value object for the garment
// ordering system and the canonical string form used both for display and for
// order submission.
package address

import "strings"

// DefaultCountry is the country preset on a fresh delivery address.
const DefaultCountry = "India"

// Delivery is a freeform delivery address filled in field by field during checkout.
//
// The canonical string form joins, in fixed field order, every field whose
// trimmed value is non-empty. Blank fields are elided, never rendered as empty
// segments.
type Delivery struct {
	FullName     string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// NewDelivery creates an empty delivery address with the country preset.
func NewDelivery() Delivery {
	return Delivery{Country: DefaultCountry}
}

// HasRequiredFields reports whether every field required for checkout is filled in.
// AddressLine2 and Country are optional.
func (d Delivery) HasRequiredFields() bool {
	required := []string{
		d.FullName,
		d.PhoneNumber,
		d.AddressLine1,
		d.City,
		d.State,
		d.PostalCode,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// CanonicalString returns the comma-joined representation of the address.
// Fields appear in fixed order (name, phone, line1, line2, city, state, postal
// code, country); fields whose trimmed value is empty are skipped. The method
// is deterministic and side-effect free.
func (d Delivery) CanonicalString() string {
	fields := []string{
		d.FullName,
		d.PhoneNumber,
		d.AddressLine1,
		d.AddressLine2,
		d.City,
		d.State,
		d.PostalCode,
		d.Country,
	}

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}
