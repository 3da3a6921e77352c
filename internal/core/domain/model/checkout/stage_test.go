package checkout_test

import (
	"fmt"
	"testing"

	"garments/internal/core/domain/model/checkout"
	"garments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(checkout.Unknown))
		assert.Equal(t, 1, int(checkout.Details))
		assert.Equal(t, 2, int(checkout.Review))
		assert.Equal(t, 3, int(checkout.Confirmation))
	})
}

func TestStage_Validate(t *testing.T) {
	t.Run("should validate valid stages", func(t *testing.T) {
		validStages := []checkout.Stage{
			checkout.Details,
			checkout.Review,
			checkout.Confirmation,
		}

		for _, stage := range validStages {
			t.Run(fmt.Sprintf("should validate %s stage", stage.String()), func(t *testing.T) {
				require.NoError(t, stage.Validate())
			})
		}
	})

	t.Run("should reject Unknown stage", func(t *testing.T) {
		err := checkout.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "stage is invalid")
	})

	t.Run("should reject invalid stage values", func(t *testing.T) {
		for _, stage := range []checkout.Stage{checkout.Stage(-1), checkout.Stage(4), checkout.Stage(100)} {
			require.Error(t, stage.Validate())
		}
	})
}

func TestStage_String(t *testing.T) {
	t.Run("should return human-readable names", func(t *testing.T) {
		assert.Equal(t, "Details", checkout.Details.String())
		assert.Equal(t, "Review", checkout.Review.String())
		assert.Equal(t, "Confirmation", checkout.Confirmation.String())
		assert.Equal(t, "Unknown", checkout.Unknown.String())
		assert.Equal(t, "Unknown", checkout.Stage(42).String())
	})
}

func TestStage_Advance(t *testing.T) {
	t.Run("should advance from Details to Review", func(t *testing.T) {
		next, err := checkout.Details.Advance()

		require.NoError(t, err)
		assert.Equal(t, checkout.Review, next)
	})

	t.Run("should not advance from other stages", func(t *testing.T) {
		for _, stage := range []checkout.Stage{checkout.Unknown, checkout.Review, checkout.Confirmation} {
			_, err := stage.Advance()
			require.Error(t, err)
		}
	})
}

func TestStage_Retreat(t *testing.T) {
	t.Run("should retreat from Review to Details", func(t *testing.T) {
		next, err := checkout.Review.Retreat()

		require.NoError(t, err)
		assert.Equal(t, checkout.Details, next)
	})

	t.Run("should not retreat from Confirmation", func(t *testing.T) {
		_, err := checkout.Confirmation.Retreat()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Confirmation is not a valid stage to retreat from")
	})

	t.Run("should not retreat from Details", func(t *testing.T) {
		_, err := checkout.Details.Retreat()

		require.Error(t, err)
	})
}

func TestStage_Confirm(t *testing.T) {
	t.Run("should confirm from Review", func(t *testing.T) {
		next, err := checkout.Review.Confirm()

		require.NoError(t, err)
		assert.Equal(t, checkout.Confirmation, next)
	})

	t.Run("should not confirm from other stages", func(t *testing.T) {
		for _, stage := range []checkout.Stage{checkout.Unknown, checkout.Details, checkout.Confirmation} {
			_, err := stage.Confirm()
			require.Error(t, err)
		}
	})
}
