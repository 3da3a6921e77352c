package ports

import (
	"context"

	"garments/internal/core/domain/model/kernel"
)

// OrderLine is one submitted line of an order: the product, how many, and the
// size label or the "N/A" placeholder when the cart entry had none.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
	Size      string
}

// OrderPayload is the write-only projection submitted to the order collaborator.
// It is not retained by the engine after submission; order history belongs to
// the collaborator.
type OrderPayload struct {
	UserID          kernel.UUID
	Items           []OrderLine
	DeliveryAddress string
	MeasurementID   kernel.UUID
}

// OrderClient creates orders at the external collaborator.
// Create is the commit point of checkout: once it succeeds the order is
// authoritative and must not be undone by downstream cleanup failures.
type OrderClient interface {
	Create(ctx context.Context, role kernel.Role, payload OrderPayload) error
}
