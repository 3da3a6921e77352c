package checkout

import (
	"fmt"

	"garments/internal/pkg/errs"
)

// Stage represents the position of a checkout session within the flow.
// It implements a state machine with defined transitions to ensure the
// flow follows the correct business workflow.
//
// Stage transitions:
//
//	Details <──> Review ──> Confirmation
//
// Details and Review move forward/backward freely once guards are met;
// Confirmation is terminal and is reached only through Confirm.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Details is the initial stage where the delivery address and
	// measurement selection are collected.
	Details

	// Review lets the customer verify line items, address, and selection
	// before committing the order.
	Review

	// Confirmation indicates the order was placed successfully.
	// This is a final stage with no further transitions allowed.
	Confirmation
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:      "Unknown",
		Details:      "Details",
		Review:       "Review",
		Confirmation: "Confirmation",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Details:      "Details",
		Review:       "Review",
		Confirmation: "Confirmation",
	}
}

// Validate checks if the Stage value is valid.
// Valid stages are: Details, Review, Confirmation.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%d is not a valid stage", s),
		)
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements fmt.Stringer and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Advance transitions the stage from Details to Review.
//
// Valid transitions:
//   - Details -> Review
//
// Returns (0, error) for any other starting stage; reaching Confirmation
// happens only through Confirm.
func (s Stage) Advance() (Stage, error) {
	if s != Details {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to advance from", s.String()),
		)
	}
	return Review, nil
}

// Retreat transitions the stage from Review back to Details.
//
// Valid transitions:
//   - Review -> Details
//
// Confirmation is terminal and never retreats.
func (s Stage) Retreat() (Stage, error) {
	if s != Review {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to retreat from", s.String()),
		)
	}
	return Details, nil
}

// Confirm transitions the stage from Review to Confirmation.
//
// Valid transitions:
//   - Review -> Confirmation (order placed successfully)
//
// Confirmation is a final stage with no further transitions possible.
func (s Stage) Confirm() (Stage, error) {
	if s != Review {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to confirm from", s.String()),
		)
	}
	return Confirmation, nil
}
