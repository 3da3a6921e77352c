package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"garments/internal/core/application/usecases/commands"
	"garments/internal/core/domain/model/address"
	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) Create(ctx context.Context, role kernel.Role, payload ports.OrderPayload) error {
	args := m.Called(ctx, role, payload)
	return args.Error(0)
}

type MockCartClient struct{ mock.Mock }

func (m *MockCartClient) Fetch(ctx context.Context, userID kernel.UUID) ([]*cart.LineItem, error) {
	args := m.Called(ctx, userID)
	if items := args.Get(0); items != nil {
		return items.([]*cart.LineItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartClient) UpdateQuantity(ctx context.Context, userID, itemID kernel.UUID, quantity int) error {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Error(0)
}

func (m *MockCartClient) Remove(ctx context.Context, userID, itemID kernel.UUID) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func snapshotItems(t *testing.T) []*cart.LineItem {
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

func reviewSession(t *testing.T, items []*cart.LineItem, measurementID kernel.UUID) *checkout.Checkout {
	t.Helper()

	session, err := checkout.NewCheckout(items)
	require.NoError(t, err)
	require.NoError(t, session.SelectMeasurement(measurementID))
	require.NoError(t, session.SetAddress(address.Delivery{
		FullName:     "Priya Raman",
		PhoneNumber:  "9876543210",
		AddressLine1: "14 Gandhi Road",
		City:         "Coimbatore",
		State:        "Tamil Nadu",
		PostalCode:   "641001",
		Country:      "India",
	}))
	require.NoError(t, session.Advance())
	return session
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	measurementID := kernel.NewUUID()
	items := snapshotItems(t)
	session := reviewSession(t, items, measurementID)

	orderClient := new(MockOrderClient)
	cartClient := new(MockCartClient)

	orderClient.On("Create", mock.Anything, kernel.Individual, mock.MatchedBy(func(p ports.OrderPayload) bool {
		return len(p.Items) == 2 &&
			p.Items[0].Size == "M" &&
			p.Items[1].Size == "N/A" &&
			p.MeasurementID.IsEqual(measurementID) &&
			p.DeliveryAddress == "Priya Raman, 9876543210, 14 Gandhi Road, Coimbatore, Tamil Nadu, 641001, India"
	})).Return(nil).Once()
	cartClient.On("Remove", mock.Anything, userID, items[0].ID()).Return(nil).Once()
	cartClient.On("Remove", mock.Anything, userID, items[1].ID()).Return(nil).Once()

	cmd, err := commands.NewPlaceOrderCommand(userID, kernel.Individual, session)
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(orderClient, cartClient, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, checkout.Confirmation, session.Stage())
	orderClient.AssertExpectations(t)
	cartClient.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CleanupFailuresStillConfirm(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	items := snapshotItems(t)
	session := reviewSession(t, items, kernel.NewUUID())

	orderClient := new(MockOrderClient)
	cartClient := new(MockCartClient)

	orderClient.On("Create", mock.Anything, kernel.Organization, mock.Anything).Return(nil).Once()
	cartClient.On("Remove", mock.Anything, userID, mock.Anything).
		Return(errors.New("cart service unavailable")).Times(2)

	cmd, err := commands.NewPlaceOrderCommand(userID, kernel.Organization, session)
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(orderClient, cartClient, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, checkout.Confirmation, session.Stage())
	cartClient.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_OrderCreationFailure(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	items := snapshotItems(t)
	session := reviewSession(t, items, kernel.NewUUID())

	orderClient := new(MockOrderClient)
	cartClient := new(MockCartClient)

	creationErr := errors.New("order service rejected the request")
	orderClient.On("Create", mock.Anything, kernel.Individual, mock.Anything).Return(creationErr).Once()

	cmd, err := commands.NewPlaceOrderCommand(userID, kernel.Individual, session)
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(orderClient, cartClient, testLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, creationErr)
	assert.Equal(t, checkout.Review, session.Stage())
	assert.Len(t, session.Items(), 2)
	cartClient.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_FailFast(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		session, err := checkout.NewCheckout(nil)
		require.NoError(t, err)

		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.Individual, session)
		require.NoError(t, err)

		orderClient := new(MockOrderClient)
		h := commands.NewPlaceOrderCommandHandler(orderClient, new(MockCartClient), testLogger())

		require.ErrorIs(t, h.Handle(t.Context(), cmd), commands.ErrCartSnapshotIsEmpty)
		orderClient.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("session still at Details", func(t *testing.T) {
		session, err := checkout.NewCheckout(snapshotItems(t))
		require.NoError(t, err)

		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.Individual, session)
		require.NoError(t, err)

		orderClient := new(MockOrderClient)
		h := commands.NewPlaceOrderCommandHandler(orderClient, new(MockCartClient), testLogger())

		require.ErrorIs(t, h.Handle(t.Context(), cmd), commands.ErrNotAtReview)
		assert.Equal(t, checkout.Details, session.Stage())
		orderClient.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unconstructed command", func(t *testing.T) {
		h := commands.NewPlaceOrderCommandHandler(new(MockOrderClient), new(MockCartClient), testLogger())

		require.Error(t, h.Handle(t.Context(), commands.PlaceOrderCommand{}))
	})
}
