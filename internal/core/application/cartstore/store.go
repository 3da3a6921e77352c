// Package cartstore holds the authoritative in-memory view of one user's cart,
// synchronized with the remote cart collaborator. All cart mutation flows
// through the Store; no other component writes cart state directly.
package cartstore

import (
	"context"
	"log/slog"
	"sync"

	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"
)

// Store maintains the cart line items for a single user together with
// per-item "operation in flight" flags.
//
// Failure policy:
//   - Load failures fall back to an empty list (fail-safe-empty) and are logged
//   - Mutation failures leave local state unchanged and are logged
//
// Neither is surfaced as a blocking error; the caller retries the triggering
// action. In-flight marks are set before each remote call and cleared after it
// resolves regardless of outcome, so no identifier is ever permanently busy.
//
// Operations on distinct identifiers never block each other. A second mutation
// for the same identifier while one is in flight proceeds as well; the remote
// side's last write wins, and the busy indicator only guarantees that at least
// one operation is outstanding.
type Store struct {
	userID kernel.UUID
	client ports.CartClient
	logger *slog.Logger

	mu       sync.Mutex
	items    []*cart.LineItem
	updating map[kernel.UUID]int
	removing map[kernel.UUID]int
}

// NewStore creates a cart store for one user backed by the given cart collaborator.
func NewStore(userID kernel.UUID, client ports.CartClient, logger *slog.Logger) *Store {
	return &Store{
		userID:   userID,
		client:   client,
		logger:   logger.With("component", "cart_store", "user_id", userID.String()),
		updating: make(map[kernel.UUID]int),
		removing: make(map[kernel.UUID]int),
	}
}

// Load fetches the cart from the remote source and replaces the local list
// verbatim. On failure the list is set to empty and the error is logged; the
// failure is deliberately not propagated.
func (s *Store) Load(ctx context.Context) {
	items, err := s.client.Fetch(ctx, s.userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch cart, falling back to empty", "error", err)
		items = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// UpdateQuantity changes the quantity of one line item.
// Quantities below 1 are a no-op. The item is marked update-in-flight for the
// duration of the remote call; on success only the local quantity is patched,
// on failure the local item is left unchanged and the error is logged.
func (s *Store) UpdateQuantity(ctx context.Context, itemID kernel.UUID, quantity int) {
	if quantity < 1 {
		return
	}

	s.markUpdating(itemID)
	defer s.unmarkUpdating(itemID)

	if err := s.client.UpdateQuantity(ctx, s.userID, itemID, quantity); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update quantity",
			"item_id", itemID.String(), "quantity", quantity, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID().IsEqual(itemID) {
			if err := item.ChangeQuantity(quantity); err != nil {
				s.logger.ErrorContext(ctx, "Failed to apply quantity locally",
					"item_id", itemID.String(), "error", err)
			}
			return
		}
	}
}

// Remove deletes one line item.
// The item is marked remove-in-flight for the duration of the remote call; on
// success it disappears from the local list, on failure it stays and the error
// is logged.
func (s *Store) Remove(ctx context.Context, itemID kernel.UUID) {
	s.markRemoving(itemID)
	defer s.unmarkRemoving(itemID)

	if err := s.client.Remove(ctx, s.userID, itemID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to remove item",
			"item_id", itemID.String(), "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID().IsEqual(itemID) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current line item list.
func (s *Store) Items() []*cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]*cart.LineItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Subtotal returns the sum of price multiplied by quantity over current items.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Subtotal(s.items)
}

// TotalItemCount returns the sum of quantities over current items.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.TotalItemCount(s.items)
}

// IsUpdating reports whether a quantity update is in flight for the item.
func (s *Store) IsUpdating(itemID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updating[itemID] > 0
}

// IsRemoving reports whether a removal is in flight for the item.
func (s *Store) IsRemoving(itemID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removing[itemID] > 0
}

// Busy reports whether any operation is in flight for the item.
func (s *Store) Busy(itemID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updating[itemID] > 0 || s.removing[itemID] > 0
}

// The in-flight sets count overlapping operations on the same identifier so
// that the mark from a second call does not vanish when the first resolves.

func (s *Store) markUpdating(itemID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updating[itemID]++
}

func (s *Store) unmarkUpdating(itemID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updating[itemID]--; s.updating[itemID] <= 0 {
		delete(s.updating, itemID)
	}
}

func (s *Store) markRemoving(itemID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removing[itemID]++
}

func (s *Store) unmarkRemoving(itemID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removing[itemID]--; s.removing[itemID] <= 0 {
		delete(s.removing, itemID)
	}
}
