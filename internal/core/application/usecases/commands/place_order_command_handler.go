package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"
	"garments/internal/pkg/errs"
)

var (
	// ErrCartSnapshotIsEmpty is returned when submission is attempted over an
	// empty cart snapshot. No remote call is made.
	ErrCartSnapshotIsEmpty = errors.New("cannot place an order for an empty cart")

	// ErrNotAtReview is returned when the checkout session is not at the Review
	// stage. No remote call is made.
	ErrNotAtReview = errors.New("order can only be placed from the review stage")
)

// sizePlaceholder substitutes for line items without a size label in the
// submitted payload.
const sizePlaceholder = "N/A"

// PlaceOrderCommandHandler sequences the side effects of order placement.
//
// Order creation is the point of no return: if it fails, nothing else happens
// and the failure is reported upward unchanged, leaving cart and checkout stage
// exactly as they were. Once it succeeds, cart cleanup is best-effort: one
// independent removal per submitted line item, with failures logged and never
// blocking the transition to Confirmation.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(orderClient, cartClient, logger)
//	cmd, _ := NewPlaceOrderCommand(userID, kernel.Individual, session)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// session.Stage() == checkout.Confirmation
type PlaceOrderCommandHandler struct {
	orderClient ports.OrderClient
	cartClient  ports.CartClient
	logger      *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires the order-creation and cart collaborators.
func NewPlaceOrderCommandHandler(
	orderClient ports.OrderClient,
	cartClient ports.CartClient,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orderClient: orderClient,
		cartClient:  cartClient,
		logger:      logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command.
//
// Steps:
//  1. Fail fast on an empty snapshot, a session not at Review, or an unmet
//     Details guard, all before any remote call.
//  2. Build the order payload (size placeholder "N/A" where absent).
//  3. Create the order exactly once; a failure aborts with no cart mutation.
//  4. Remove submitted items from the cart concurrently and independently;
//     failures are logged, never aggregated into the result.
//  5. Transition the session to Confirmation regardless of removal outcomes.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session := cmd.Checkout()
	items := session.Items()

	if len(items) == 0 {
		return ErrCartSnapshotIsEmpty
	}
	if session.Stage() != checkout.Review {
		return ErrNotAtReview
	}
	if !session.CanLeaveDetails() {
		return checkout.ErrDetailsIncomplete
	}

	measurementID := session.MeasurementID()
	if measurementID == nil {
		return errs.NewValueIsRequiredError("measurement selection")
	}

	lines := make([]ports.OrderLine, len(items))
	for i, item := range items {
		size := item.Size()
		if size == "" {
			size = sizePlaceholder
		}
		lines[i] = ports.OrderLine{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Size:      size,
		}
	}

	payload := ports.OrderPayload{
		UserID:          cmd.UserID(),
		Items:           lines,
		DeliveryAddress: session.Address().CanonicalString(),
		MeasurementID:   *measurementID,
	}

	if err := h.orderClient.Create(ctx, cmd.Role(), payload); err != nil {
		return err
	}

	// The order is authoritative from here on. Each removal runs in its own
	// goroutine with its own error isolation so a cart-service hiccup cannot
	// undo or mask the placed order.
	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func(itemID kernel.UUID) {
			defer wg.Done()
			if err := h.cartClient.Remove(ctx, cmd.UserID(), itemID); err != nil {
				h.logger.ErrorContext(ctx, "Post-order cart cleanup failed",
					"item_id", itemID.String(), "error", err)
			}
		}(item.ID())
	}
	wg.Wait()

	return session.Confirm()
}
