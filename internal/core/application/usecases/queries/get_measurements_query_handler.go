package queries

import (
	"context"

	"garments/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMeasurementsQueryHandler retrieves measurement profiles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetMeasurementsQueryHandler(db)
//	query, _ := NewGetMeasurementsQuery(userID, kernel.Individual)
//
//	profiles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get measurements: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d profiles\n", len(profiles))
type GetMeasurementsQueryHandler struct {
	db *gorm.DB
}

// NewGetMeasurementsQueryHandler creates a handler for measurement retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetMeasurementsQueryHandler(db *gorm.DB) GetMeasurementsQueryHandler {
	return GetMeasurementsQueryHandler{db: db}
}

// Handle executes the query to retrieve one user's measurement profiles.
// Returns a slice of profile read models sorted by name.
func (h GetMeasurementsQueryHandler) Handle(
	ctx context.Context,
	query GetMeasurementsQuery,
) ([]GetMeasurementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	profiles := make([]GetMeasurementsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM measurements
		WHERE user_id = ? AND role = ?
		ORDER BY name
	`, query.UserID().Bytes(), query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var profile GetMeasurementsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &profile.Name); err != nil {
			return nil, err
		}

		profileID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		profile.ID = profileID
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
