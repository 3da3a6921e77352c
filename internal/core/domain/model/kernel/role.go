package kernel

import (
	"fmt"

	"garments/internal/pkg/errs"
)

// Role identifies the class of customer placing orders.
// Organizations order garments in bulk for their staff, individuals order for
// themselves. Collaborator endpoints are partitioned by role, so every cart and
// order operation carries one.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Organization is a business customer ordering garments for its staff.
	Organization

	// Individual is a retail customer ordering for themselves.
	Individual
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "Unknown",
		Organization: "organization",
		Individual:   "individual",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Organization: "organization",
		Individual:   "individual",
	}
}

// RoleFromString parses a role from its string representation.
// Accepts "organization" and "individual"; anything else is invalid.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are Organization and Individual.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
