package ports

import (
	"context"

	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/kernel"
)

// CartClient defines the remote cart collaborator consumed by the engine.
// The engine is agnostic to the transport behind it; each call resolves to a
// success or failure outcome.
type CartClient interface {
	// Fetch returns the current cart line items for a user.
	Fetch(ctx context.Context, userID kernel.UUID) ([]*cart.LineItem, error)

	// UpdateQuantity changes the quantity of one cart entry.
	UpdateQuantity(ctx context.Context, userID, itemID kernel.UUID, quantity int) error

	// Remove deletes one cart entry.
	Remove(ctx context.Context, userID, itemID kernel.UUID) error
}
