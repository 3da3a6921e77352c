package kernel

import (
	"fmt"
	"strings"

	"garments/internal/pkg/errs"
)

// ErrPriceIsNotConstructed indicates that a Price was not created through NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice")

// Price is a value object representing a non-negative rupee amount.
// It is immutable; arithmetic returns plain float64 amounts so aggregation
// helpers can sum across line items without repeated validation.
type Price struct {
	amount        float64
	isConstructed bool
}

// NewPrice creates a Price from a rupee amount.
// Negative amounts are rejected.
func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is negative", amount),
		)
	}
	return Price{amount: amount, isConstructed: true}, nil
}

// Validate ensures the Price was created via NewPrice.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}

// Amount returns the rupee amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Times returns the amount multiplied by a quantity.
func (p Price) Times(quantity int) float64 {
	return p.amount * float64(quantity)
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// FormatINR renders a rupee amount for display using Indian digit grouping
// and no fraction digits, e.g. 123456 -> "₹1,23,456".
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)

	// Indian grouping: rightmost group of three, then groups of two.
	var groups []string
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		groups = append(groups, tail)
	} else {
		groups = []string{digits}
	}

	formatted := "₹" + strings.Join(groups, ",")
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}
