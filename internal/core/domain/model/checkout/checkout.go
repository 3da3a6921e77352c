package checkout

import (
	"errors"
	"fmt"

	"garments/internal/core/domain/model/address"
	"garments/internal/core/domain/model/cart"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/pkg/errs"
)

var (
	// ErrCheckoutIsNotConstructed is returned when a Checkout instance was not created
	// through the NewCheckout factory method.
	ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

	// ErrDetailsIncomplete is returned when Advance is attempted while the
	// measurement selection or a required address field is still missing.
	// The stage stays at Details; the caller surfaces the unmet guard.
	ErrDetailsIncomplete = errors.New("measurement selection and delivery address must be completed first")
)

// Checkout is the aggregate root for one pass through the checkout flow.
//
// Checkout follows these invariants:
//   - Holds no state beyond stage, address, measurement selection, and the
//     cart snapshot taken at construction
//   - The snapshot is immutable for the life of the session
//   - Stage transitions follow the Stage state machine
//   - A fresh session always starts at Details with no preset address
//     fields beyond the country default and no measurement selection
type Checkout struct {
	// stage is the current position in the flow
	stage Stage

	// deliveryAddress is filled in field by field during Details
	deliveryAddress address.Delivery

	// measurementID references the single measurement profile applied to
	// every line item (nil until selected)
	measurementID *kernel.UUID

	// items is the cart snapshot taken when the flow was entered
	items []*cart.LineItem

	// isConstructed ensures the checkout was created via NewCheckout
	isConstructed bool
}

// NewCheckout starts a fresh checkout session over a snapshot of cart line items.
// The snapshot is copied; later cart mutations do not affect the session.
// Every item in the snapshot must be a constructed LineItem.
func NewCheckout(items []*cart.LineItem) (*Checkout, error) {
	snapshot := make([]*cart.LineItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		snapshot[i] = item.Clone()
	}

	return &Checkout{
		stage:           Details,
		deliveryAddress: address.NewDelivery(),
		items:           snapshot,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Checkout instance was properly constructed through NewCheckout.
func (c *Checkout) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckoutIsNotConstructed
	}
	return nil
}

// Stage returns the current stage of the flow.
func (c *Checkout) Stage() Stage {
	return c.stage
}

// Items returns a copy of the cart snapshot taken when the flow was entered.
func (c *Checkout) Items() []*cart.LineItem {
	snapshot := make([]*cart.LineItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Address returns the delivery address as filled in so far.
func (c *Checkout) Address() address.Delivery {
	return c.deliveryAddress
}

// SetAddress replaces the delivery address.
// Permitted only while the session is at Details.
func (c *Checkout) SetAddress(delivery address.Delivery) error {
	if c.stage != Details {
		return stageLockedError(c.stage)
	}
	c.deliveryAddress = delivery
	return nil
}

// MeasurementID returns the selected measurement profile identifier,
// or nil when none has been selected yet.
func (c *Checkout) MeasurementID() *kernel.UUID {
	return c.measurementID
}

// SelectMeasurement records the measurement profile applied to every line item.
// Permitted only while the session is at Details.
func (c *Checkout) SelectMeasurement(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if c.stage != Details {
		return stageLockedError(c.stage)
	}
	c.measurementID = &id
	return nil
}

// CanLeaveDetails reports whether the Details stage guard is met:
// a measurement is selected and all required address fields are filled in.
func (c *Checkout) CanLeaveDetails() bool {
	return c.measurementID != nil && c.deliveryAddress.HasRequiredFields()
}

// Advance moves the session from Details to Review.
// When the guard is unmet the stage is left unchanged and ErrDetailsIncomplete
// is returned for the caller to surface.
func (c *Checkout) Advance() error {
	if c.stage == Details && !c.CanLeaveDetails() {
		return ErrDetailsIncomplete
	}

	newStage, err := c.stage.Advance()
	if err != nil {
		return err
	}

	c.stage = newStage
	return nil
}

// Retreat moves the session from Review back to Details.
// Confirmation is terminal and never retreats.
func (c *Checkout) Retreat() error {
	newStage, err := c.stage.Retreat()
	if err != nil {
		return err
	}

	c.stage = newStage
	return nil
}

// Confirm moves the session from Review to Confirmation.
// Called by the order submission flow once order creation has succeeded.
func (c *Checkout) Confirm() error {
	newStage, err := c.stage.Confirm()
	if err != nil {
		return err
	}

	c.stage = newStage
	return nil
}

func stageLockedError(stage Stage) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("details can no longer change at stage %s", stage.String()),
	)
}
