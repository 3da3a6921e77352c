// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the order-creation collaborator over
// PostgreSQL; orders are write-only from the engine's point of view.
package orderrepo

import (
	"time"

	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"

	"github.com/google/uuid"
)

const (
	// paymentMethodCOD is the only supported payment method.
	paymentMethodCOD = "COD"

	// statusPending is the initial status of every created order.
	statusPending = "pending"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Role            string
	DeliveryAddress string
	MeasurementID   uuid.UUID `gorm:"type:uuid"`
	PaymentMethod   string
	Status          string
	CreatedAt       time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one submitted line of an order.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Size      string
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromPayload converts an order payload to its database representation.
// A fresh order identifier is generated here; the engine never sees it.
func fromPayload(role kernel.Role, payload ports.OrderPayload) (OrderDTO, []OrderItemDTO) {
	orderID := uuid.New()

	order := OrderDTO{
		ID:              orderID,
		UserID:          payload.UserID.Bytes(),
		Role:            role.String(),
		DeliveryAddress: payload.DeliveryAddress,
		MeasurementID:   payload.MeasurementID.Bytes(),
		PaymentMethod:   paymentMethodCOD,
		Status:          statusPending,
	}

	items := make([]OrderItemDTO, len(payload.Items))
	for i, line := range payload.Items {
		items[i] = OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			Size:      line.Size,
		}
	}

	return order, items
}
