package measurementrepo

import (
	"context"

	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"

	"gorm.io/gorm"
)

// GormMeasurementRepository implements the measurement collaborator using GORM.
type GormMeasurementRepository struct {
	db *gorm.DB
}

// NewGormMeasurementRepository creates a new GORM measurement repository.
func NewGormMeasurementRepository(db *gorm.DB) *GormMeasurementRepository {
	return &GormMeasurementRepository{db: db}
}

// FetchForRole returns the measurement profiles one user stored under a role,
// sorted by name.
func (r *GormMeasurementRepository) FetchForRole(
	ctx context.Context,
	userID kernel.UUID,
	role kernel.Role,
) ([]ports.MeasurementProfile, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []MeasurementDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID.Bytes(), role.String()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]ports.MeasurementProfile, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		profiles = append(profiles, ports.MeasurementProfile{ID: id, Name: dto.Name})
	}

	return profiles, nil
}
