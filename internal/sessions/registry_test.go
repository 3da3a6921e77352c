package sessions_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func lineItem(t *testing.T, name string, amount float64, quantity int) *cart.LineItem {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	item, err := cart.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), name, price, quantity, "", "")
	require.NoError(t, err)
	return item
}

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Run("should load the cart on first use", func(t *testing.T) {
		userID := kernel.NewUUID()
		items := []*cart.LineItem{lineItem(t, "Shirt", 500, 2)}

		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, userID).Return(items, nil).Once()

		registry := sessions.NewRegistry(client, testLogger())
		session := registry.GetOrCreate(t.Context(), userID, kernel.Individual)

		assert.Len(t, session.Store().Items(), 1)
		assert.Equal(t, kernel.Individual, session.Role())
		assert.Nil(t, session.Checkout())
		client.AssertExpectations(t)
	})

	t.Run("should return the same session on repeated calls", func(t *testing.T) {
		userID := kernel.NewUUID()

		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, userID).Return(nil, nil).Once()

		registry := sessions.NewRegistry(client, testLogger())
		first := registry.GetOrCreate(t.Context(), userID, kernel.Individual)
		second := registry.GetOrCreate(t.Context(), userID, kernel.Individual)

		assert.Same(t, first, second)
		assert.Equal(t, 1, registry.Len())
		client.AssertExpectations(t)
	})

	t.Run("should keep sessions of different users apart", func(t *testing.T) {
		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, mock.Anything).Return(nil, nil).Twice()

		registry := sessions.NewRegistry(client, testLogger())
		first := registry.GetOrCreate(t.Context(), kernel.NewUUID(), kernel.Individual)
		second := registry.GetOrCreate(t.Context(), kernel.NewUUID(), kernel.Organization)

		assert.NotSame(t, first, second)
		assert.Equal(t, 2, registry.Len())
	})
}

func TestRegistry_BeginCheckout(t *testing.T) {
	t.Run("should snapshot the freshly loaded cart", func(t *testing.T) {
		userID := kernel.NewUUID()
		items := []*cart.LineItem{
			lineItem(t, "Shirt", 500, 2),
			lineItem(t, "Tie", 300, 1),
		}

		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, userID).Return(items, nil).Twice()

		registry := sessions.NewRegistry(client, testLogger())
		session, err := registry.BeginCheckout(t.Context(), userID, kernel.Individual)

		require.NoError(t, err)
		require.NotNil(t, session.Checkout())
		assert.Equal(t, checkout.Details, session.Checkout().Stage())
		assert.Len(t, session.Checkout().Items(), 2)
		client.AssertExpectations(t)
	})

	t.Run("should replace a previous flow", func(t *testing.T) {
		userID := kernel.NewUUID()

		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, userID).Return(nil, nil)

		registry := sessions.NewRegistry(client, testLogger())
		first, err := registry.BeginCheckout(t.Context(), userID, kernel.Individual)
		require.NoError(t, err)
		firstFlow := first.Checkout()

		second, err := registry.BeginCheckout(t.Context(), userID, kernel.Individual)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.NotSame(t, firstFlow, second.Checkout())
	})
}

func TestRegistry_EndCheckout(t *testing.T) {
	t.Run("should drop the active flow and keep the session", func(t *testing.T) {
		userID := kernel.NewUUID()

		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, userID).Return(nil, nil)

		registry := sessions.NewRegistry(client, testLogger())
		session, err := registry.BeginCheckout(t.Context(), userID, kernel.Individual)
		require.NoError(t, err)
		require.NotNil(t, session.Checkout())

		registry.EndCheckout(userID)

		assert.Nil(t, session.Checkout())
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("should ignore unknown users", func(t *testing.T) {
		registry := sessions.NewRegistry(new(MockCartClient), testLogger())

		registry.EndCheckout(kernel.NewUUID())

		assert.Zero(t, registry.Len())
	})
}

func TestRegistry_PruneStale(t *testing.T) {
	t.Run("should keep recently active sessions", func(t *testing.T) {
		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, mock.Anything).Return(nil, nil)

		registry := sessions.NewRegistry(client, testLogger())
		registry.GetOrCreate(t.Context(), kernel.NewUUID(), kernel.Individual)

		pruned := registry.PruneStale(time.Hour)

		assert.Zero(t, pruned)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("should drop sessions idle past the cutoff", func(t *testing.T) {
		client := new(MockCartClient)
		client.On("Fetch", mock.Anything, mock.Anything).Return(nil, nil)

		registry := sessions.NewRegistry(client, testLogger())
		registry.GetOrCreate(t.Context(), kernel.NewUUID(), kernel.Individual)
		registry.GetOrCreate(t.Context(), kernel.NewUUID(), kernel.Organization)

		time.Sleep(20 * time.Millisecond)
		pruned := registry.PruneStale(10 * time.Millisecond)

		assert.Equal(t, 2, pruned)
		assert.Zero(t, registry.Len())
	})
}
