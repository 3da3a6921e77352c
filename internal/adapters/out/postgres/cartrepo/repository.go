package cartrepo

import (
	"context"
	"fmt"

	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements the cart collaborator using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Fetch returns the cart entries of one user, oldest first.
func (r *GormCartRepository) Fetch(ctx context.Context, userID kernel.UUID) ([]*cart.LineItem, error) {
	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, fmt.Errorf("corrupt cart row %s: %w", dto.ID, mapErr)
		}
		items = append(items, item)
	}

	return items, nil
}

// UpdateQuantity changes the quantity of one cart entry.
// Quantities below 1 are rejected before touching the database.
func (r *GormCartRepository) UpdateQuantity(
	ctx context.Context,
	userID, itemID kernel.UUID,
	quantity int,
) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	result := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("id = ? AND user_id = ?", itemID.Bytes(), userID.Bytes()).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", itemID.String())
	}

	return nil
}

// Remove deletes one cart entry.
func (r *GormCartRepository) Remove(ctx context.Context, userID, itemID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID.Bytes(), userID.Bytes()).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", itemID.String())
	}

	return nil
}
