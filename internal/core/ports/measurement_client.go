package ports

import (
	"context"

	"garments/internal/core/domain/model/kernel"
)

// MeasurementProfile is the read model for a stored measurement profile.
// Profiles are managed by an external collaborator; the engine only selects one.
type MeasurementProfile struct {
	ID   kernel.UUID
	Name string
}

// MeasurementClient fetches the measurement profiles available to a user.
type MeasurementClient interface {
	// FetchForRole returns the profiles stored for the user under the given role.
	FetchForRole(ctx context.Context, userID kernel.UUID, role kernel.Role) ([]MeasurementProfile, error)
}
