package address_test

import (
	"testing"

	"garments/internal/core/domain/model/address"

	"github.com/stretchr/testify/assert"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should preset the country", func(t *testing.T) {
		d := address.NewDelivery()

		assert.Equal(t, "India", d.Country)
		assert.Empty(t, d.FullName)
	})
}

func TestDelivery_HasRequiredFields(t *testing.T) {
	complete := address.Delivery{
		FullName:     "Priya Raman",
		PhoneNumber:  "9876543210",
		AddressLine1: "14 Gandhi Road",
		City:         "Coimbatore",
		State:        "Tamil Nadu",
		PostalCode:   "641001",
		Country:      "India",
	}

	t.Run("should accept a complete address", func(t *testing.T) {
		assert.True(t, complete.HasRequiredFields())
	})

	t.Run("should not require line2 or country", func(t *testing.T) {
		d := complete
		d.AddressLine2 = ""
		d.Country = ""

		assert.True(t, d.HasRequiredFields())
	})

	t.Run("should reject when any required field is blank", func(t *testing.T) {
		blankers := []func(*address.Delivery){
			func(d *address.Delivery) { d.FullName = "" },
			func(d *address.Delivery) { d.PhoneNumber = "   " },
			func(d *address.Delivery) { d.AddressLine1 = "" },
			func(d *address.Delivery) { d.City = "" },
			func(d *address.Delivery) { d.State = "\t" },
			func(d *address.Delivery) { d.PostalCode = "" },
		}

		for _, blank := range blankers {
			d := complete
			blank(&d)
			assert.False(t, d.HasRequiredFields())
		}
	})
}

func TestDelivery_CanonicalString(t *testing.T) {
	t.Run("should join non-empty fields in fixed order", func(t *testing.T) {
		d := address.Delivery{
			FullName:     "A",
			PhoneNumber:  "",
			AddressLine1: "B",
			City:         "C",
			State:        "",
			PostalCode:   "D",
			Country:      "IN",
		}

		assert.Equal(t, "A, B, C, D, IN", d.CanonicalString())
	})

	t.Run("should elide blank fields instead of leaving empty segments", func(t *testing.T) {
		d := address.Delivery{
			FullName:     "Priya Raman",
			AddressLine1: "14 Gandhi Road",
			AddressLine2: "   ",
			City:         "Coimbatore",
			Country:      "India",
		}

		assert.Equal(t, "Priya Raman, 14 Gandhi Road, Coimbatore, India", d.CanonicalString())
	})

	t.Run("should be empty for an all-blank address", func(t *testing.T) {
		assert.Empty(t, address.Delivery{}.CanonicalString())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		d := address.NewDelivery()
		d.FullName = "Priya Raman"
		d.AddressLine1 = "14 Gandhi Road"

		first := d.CanonicalString()
		second := d.CanonicalString()

		assert.Equal(t, first, second)
	})
}
