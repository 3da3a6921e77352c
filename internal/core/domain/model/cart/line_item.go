package cart

import (
	"errors"
	"fmt"

	"garments/internal/core/domain/model/kernel"
	"garments/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not created
	// through the NewLineItem or RestoreLineItem factory methods.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem represents one product entry in a shopping cart.
//
// LineItem follows these invariants:
//   - Must have valid unique and product identifiers
//   - Unit price is non-negative
//   - Quantity is always at least 1; ChangeQuantity rejects anything lower
//   - Can only be created through NewLineItem or RestoreLineItem
type LineItem struct {
	// id is the unique identifier of the entry within the cart
	id kernel.UUID

	// productID references the catalog product
	productID kernel.UUID

	// name is the display name captured when the product was added
	name string

	// price is the unit price in rupees
	price kernel.Price

	// quantity is the ordered amount (always >= 1)
	quantity int

	// size is an optional size label ("M", "XL", ...)
	size string

	// imageURL is an optional image reference for display
	imageURL string

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewLineItem creates a LineItem with validation.
// Returns a validation error if any identifier is invalid, the name is empty,
// the price was not constructed, or the quantity is below 1.
func NewLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	price kernel.Price,
	quantity int,
	size string,
	imageURL string,
) (*LineItem, error) {
	item := &LineItem{
		size:          size,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistence.
// Applies the same validation as NewLineItem.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	price kernel.Price,
	quantity int,
	size string,
	imageURL string,
) (*LineItem, error) {
	return NewLineItem(id, productID, name, price, quantity, size, imageURL)
}

// Clone returns an independent copy of the line item.
// Mutations on the original never reach the copy and vice versa.
func (i *LineItem) Clone() *LineItem {
	clone := *i
	return &clone
}

// Validate ensures the LineItem instance was properly constructed.
func (i *LineItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two line items by their unique identifiers.
func (i *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (i *LineItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced catalog product identifier.
func (i *LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the display name of the product.
func (i *LineItem) Name() string {
	return i.name
}

// Price returns the unit price.
func (i *LineItem) Price() kernel.Price {
	return i.price
}

// Quantity returns the ordered amount.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// Size returns the optional size label, empty when none was chosen.
func (i *LineItem) Size() string {
	return i.size
}

// ImageURL returns the optional image reference.
func (i *LineItem) ImageURL() string {
	return i.imageURL
}

// LineTotal returns price multiplied by quantity.
func (i *LineItem) LineTotal() float64 {
	return i.price.Times(i.quantity)
}

// ChangeQuantity sets a new quantity.
// Quantities below 1 are rejected; removal is the only way to reach zero presence.
func (i *LineItem) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
