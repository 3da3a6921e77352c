package commands

import (
	"errors"

	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCheckoutIsRequired = errors.New("checkout session is required")
)

// PlaceOrderCommand represents a request to submit the current checkout session
// as an order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(userID, kernel.Individual, session)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(orderClient, cartClient, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	role     kernel.Role
	checkout *checkout.Checkout

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from a checkout session.
// Validates the user identifier, the role, and that the session was constructed.
func NewPlaceOrderCommand(
	userID kernel.UUID,
	role kernel.Role,
	session *checkout.Checkout,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setRole(role),
		orderCommand.setCheckout(session),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the customer class placing the order.
func (c PlaceOrderCommand) Role() kernel.Role {
	return c.role
}

// Checkout returns the checkout session to submit.
func (c PlaceOrderCommand) Checkout() *checkout.Checkout {
	return c.checkout
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *PlaceOrderCommand) setCheckout(session *checkout.Checkout) error {
	if session == nil {
		return ErrCheckoutIsRequired
	}
	if err := session.Validate(); err != nil {
		return err
	}

	c.checkout = session
	return nil
}
