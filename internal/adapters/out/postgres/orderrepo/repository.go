package orderrepo

import (
	"context"

	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"
	"garments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements the order-creation collaborator using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists an order with its lines in a single transaction.
// The order row and every line commit together or not at all, so a failure
// here leaves no partial order behind.
func (r *GormOrderRepository) Create(
	ctx context.Context,
	role kernel.Role,
	payload ports.OrderPayload,
) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if len(payload.Items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	if payload.DeliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if err := payload.MeasurementID.Validate(); err != nil {
		return err
	}

	order, items := fromPayload(role, payload)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
}
