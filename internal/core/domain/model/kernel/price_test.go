package kernel_test

import (
	"testing"

	"garments/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create a price from a non-negative amount", func(t *testing.T) {
		price, err := kernel.NewPrice(499.50)

		require.NoError(t, err)
		require.NoError(t, price.Validate())
		assert.InDelta(t, 499.50, price.Amount(), 0.0001)
	})

	t.Run("should allow zero", func(t *testing.T) {
		price, err := kernel.NewPrice(0)

		require.NoError(t, err)
		assert.Zero(t, price.Amount())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price is invalid")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var price kernel.Price

		require.Error(t, price.Validate())
	})
}

func TestPrice_Times(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		price, err := kernel.NewPrice(500)
		require.NoError(t, err)

		assert.InDelta(t, 1000.0, price.Times(2), 0.0001)
		assert.Zero(t, price.Times(0))
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("should compare by amount", func(t *testing.T) {
		a, _ := kernel.NewPrice(300)
		b, _ := kernel.NewPrice(300)
		c, _ := kernel.NewPrice(301)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestFormatINR(t *testing.T) {
	t.Run("should format with Indian digit grouping", func(t *testing.T) {
		assert.Equal(t, "₹0", kernel.FormatINR(0))
		assert.Equal(t, "₹999", kernel.FormatINR(999))
		assert.Equal(t, "₹1,300", kernel.FormatINR(1300))
		assert.Equal(t, "₹12,345", kernel.FormatINR(12345))
		assert.Equal(t, "₹1,23,456", kernel.FormatINR(123456))
		assert.Equal(t, "₹12,34,567", kernel.FormatINR(1234567))
	})

	t.Run("should drop fraction digits", func(t *testing.T) {
		assert.Equal(t, "₹1,300", kernel.FormatINR(1299.60))
	})

	t.Run("should keep the sign of negative amounts", func(t *testing.T) {
		assert.Equal(t, "-₹1,300", kernel.FormatINR(-1300))
	})
}
