// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. It implements the cart collaborator over PostgreSQL,
// handling the conversion between domain line items and database rows.
package cartrepo

import (
	"time"

	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents the database structure for persisting cart entries.
// Indexed by user for efficient per-cart retrieval.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Price     float64 `gorm:"type:numeric(10,2)"`
	Quantity  int
	Size      string
	ImageURL  string
	CreatedAt time.Time
}

// TableName specifies the database table name for cart entries.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// toDomain converts a database DTO to a cart line item.
func toDomain(dto CartItemDTO) (*cart.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return cart.RestoreLineItem(id, productID, dto.Name, price, dto.Quantity, dto.Size, dto.ImageURL)
}
