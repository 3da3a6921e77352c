package kernel_test

import (
	"testing"

	"garments/internal/core/domain/model/kernel"
	"garments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(kernel.UnknownRole))
		assert.Equal(t, 1, int(kernel.Organization))
		assert.Equal(t, 2, int(kernel.Individual))
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		require.NoError(t, kernel.Organization.Validate())
		require.NoError(t, kernel.Individual.Validate())
	})

	t.Run("should reject UnknownRole", func(t *testing.T) {
		err := kernel.UnknownRole.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.Role(-1), kernel.Role(3), kernel.Role(42)} {
			require.Error(t, role.Validate())
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should return wire representations", func(t *testing.T) {
		assert.Equal(t, "organization", kernel.Organization.String())
		assert.Equal(t, "individual", kernel.Individual.String())
		assert.Equal(t, "Unknown", kernel.UnknownRole.String())
		assert.Equal(t, "Unknown", kernel.Role(99).String())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		role, err := kernel.RoleFromString("organization")
		require.NoError(t, err)
		assert.Equal(t, kernel.Organization, role)

		role, err = kernel.RoleFromString("individual")
		require.NoError(t, err)
		assert.Equal(t, kernel.Individual, role)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "admin", "Organization", "business"} {
			role, err := kernel.RoleFromString(s)
			require.Error(t, err)
			assert.Equal(t, kernel.UnknownRole, role)
		}
	})
}
