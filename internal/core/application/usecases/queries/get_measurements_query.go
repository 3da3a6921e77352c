// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"garments/internal/core/domain/model/kernel"
	"garments/internal/pkg/guard"
)

var (
	ErrGetMeasurementsQueryIsNotConstructed = errors.New(
		"GetMeasurementsQuery must be created via NewGetMeasurementsQuery constructor",
	)
)

// GetMeasurementsQuery retrieves the measurement profiles stored for one user
// under one role. The checkout flow offers these as the selection applied to
// every line item of an order.
//
// Example:
//
//	query, err := NewGetMeasurementsQuery(userID, kernel.Individual)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	profiles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve measurements: %w", err)
//	}
type GetMeasurementsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetMeasurementsQuery creates a query for one user's measurement profiles.
// Validates the user identifier and role.
func NewGetMeasurementsQuery(userID kernel.UUID, role kernel.Role) (GetMeasurementsQuery, error) {
	query := GetMeasurementsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setRole(role),
	); err != nil {
		return GetMeasurementsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMeasurementsQuery) Validate() error {
	return q.guard.Validate(ErrGetMeasurementsQueryIsNotConstructed)
}

// UserID returns the owner of the measurement profiles.
func (q GetMeasurementsQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the customer class the profiles were stored under.
func (q GetMeasurementsQuery) Role() kernel.Role {
	return q.role
}

func (q *GetMeasurementsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *GetMeasurementsQuery) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

// GetMeasurementsQueryResponse represents one measurement profile in the read model.
type GetMeasurementsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
