package checkout_test

import (
	"testing"

	"garments/internal/core/domain/model/address"
	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []*cart.LineItem {
	t.Helper()

	price, err := kernel.NewPrice(500)
	require.NoError(t, err)
	shirt, err := cart.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Formal Shirt", price, 2, "M", "")
	require.NoError(t, err)

	price, err = kernel.NewPrice(300)
	require.NoError(t, err)
	tie, err := cart.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Silk Tie", price, 1, "", "")
	require.NoError(t, err)

	return []*cart.LineItem{shirt, tie}
}

func completeAddress() address.Delivery {
	return address.Delivery{
		FullName:     "Priya Raman",
		PhoneNumber:  "9876543210",
		AddressLine1: "14 Gandhi Road",
		City:         "Coimbatore",
		State:        "Tamil Nadu",
		PostalCode:   "641001",
		Country:      "India",
	}
}

func TestNewCheckout(t *testing.T) {
	t.Run("should start at Details with a snapshot and no selections", func(t *testing.T) {
		items := testItems(t)

		ck, err := checkout.NewCheckout(items)

		require.NoError(t, err)
		require.NoError(t, ck.Validate())
		assert.Equal(t, checkout.Details, ck.Stage())
		assert.Len(t, ck.Items(), 2)
		assert.Nil(t, ck.MeasurementID())
		assert.Equal(t, "India", ck.Address().Country)
		assert.Empty(t, ck.Address().FullName)
	})

	t.Run("should allow an empty snapshot", func(t *testing.T) {
		ck, err := checkout.NewCheckout(nil)

		require.NoError(t, err)
		assert.Empty(t, ck.Items())
	})

	t.Run("should keep the snapshot independent of later item mutations", func(t *testing.T) {
		items := testItems(t)

		ck, err := checkout.NewCheckout(items)
		require.NoError(t, err)

		require.NoError(t, items[0].ChangeQuantity(9))

		assert.Equal(t, 2, ck.Items()[0].Quantity())
	})

	t.Run("should reject unconstructed line items", func(t *testing.T) {
		_, err := checkout.NewCheckout([]*cart.LineItem{{}})

		require.ErrorIs(t, err, cart.ErrLineItemIsNotConstructed)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var ck checkout.Checkout

		require.ErrorIs(t, ck.Validate(), checkout.ErrCheckoutIsNotConstructed)
	})
}

func TestCheckout_CanLeaveDetails(t *testing.T) {
	t.Run("should be false without a measurement selection", func(t *testing.T) {
		ck, err := checkout.NewCheckout(testItems(t))
		require.NoError(t, err)
		require.NoError(t, ck.SetAddress(completeAddress()))

		assert.False(t, ck.CanLeaveDetails())
	})

	t.Run("should be false with an incomplete address", func(t *testing.T) {
		ck, err := checkout.NewCheckout(testItems(t))
		require.NoError(t, err)
		require.NoError(t, ck.SelectMeasurement(kernel.NewUUID()))

		assert.False(t, ck.CanLeaveDetails())
	})

	t.Run("should be true with selection and complete address", func(t *testing.T) {
		ck, err := checkout.NewCheckout(testItems(t))
		require.NoError(t, err)
		require.NoError(t, ck.SelectMeasurement(kernel.NewUUID()))
		require.NoError(t, ck.SetAddress(completeAddress()))

		assert.True(t, ck.CanLeaveDetails())
	})
}

func TestCheckout_Advance(t *testing.T) {
	t.Run("should stay at Details while the guard is unmet", func(t *testing.T) {
		ck, err := checkout.NewCheckout(testItems(t))
		require.NoError(t, err)

		err = ck.Advance()

		require.ErrorIs(t, err, checkout.ErrDetailsIncomplete)
		assert.Equal(t, checkout.Details, ck.Stage())
	})

	t.Run("should move to Review once the guard holds", func(t *testing.T) {
		ck := reviewStageCheckout(t)

		assert.Equal(t, checkout.Review, ck.Stage())
	})

	t.Run("should not advance from Review", func(t *testing.T) {
		ck := reviewStageCheckout(t)

		require.Error(t, ck.Advance())
		assert.Equal(t, checkout.Review, ck.Stage())
	})
}

func TestCheckout_Retreat(t *testing.T) {
	t.Run("should move from Review back to Details", func(t *testing.T) {
		ck := reviewStageCheckout(t)

		require.NoError(t, ck.Retreat())
		assert.Equal(t, checkout.Details, ck.Stage())
	})

	t.Run("should keep address and selection across retreat", func(t *testing.T) {
		ck := reviewStageCheckout(t)

		require.NoError(t, ck.Retreat())
		assert.NotNil(t, ck.MeasurementID())
		assert.True(t, ck.Address().HasRequiredFields())
	})

	t.Run("should not retreat from Confirmation", func(t *testing.T) {
		ck := reviewStageCheckout(t)
		require.NoError(t, ck.Confirm())

		require.Error(t, ck.Retreat())
		assert.Equal(t, checkout.Confirmation, ck.Stage())
	})
}

func TestCheckout_Confirm(t *testing.T) {
	t.Run("should move from Review to Confirmation", func(t *testing.T) {
		ck := reviewStageCheckout(t)

		require.NoError(t, ck.Confirm())
		assert.Equal(t, checkout.Confirmation, ck.Stage())
	})

	t.Run("should not confirm from Details", func(t *testing.T) {
		ck, err := checkout.NewCheckout(testItems(t))
		require.NoError(t, err)

		require.Error(t, ck.Confirm())
		assert.Equal(t, checkout.Details, ck.Stage())
	})
}

func TestCheckout_DetailsLockedAfterAdvance(t *testing.T) {
	t.Run("should reject address and selection changes at Review", func(t *testing.T) {
		ck := reviewStageCheckout(t)

		require.Error(t, ck.SetAddress(completeAddress()))
		require.Error(t, ck.SelectMeasurement(kernel.NewUUID()))
	})
}

func reviewStageCheckout(t *testing.T) *checkout.Checkout {
	t.Helper()

	ck, err := checkout.NewCheckout(testItems(t))
	require.NoError(t, err)
	require.NoError(t, ck.SelectMeasurement(kernel.NewUUID()))
	require.NoError(t, ck.SetAddress(completeAddress()))
	require.NoError(t, ck.Advance())
	return ck
}
