// Package measurementrepo provides the measurement collaborator over
// PostgreSQL. Measurement CRUD itself belongs to an external surface; the
// engine only reads the profiles available to a user.
package measurementrepo

import (
	"time"

	"github.com/google/uuid"
)

// MeasurementDTO represents the database structure for stored measurement profiles.
type MeasurementDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Role      string
	Name      string
	Chest     float64 `gorm:"type:numeric(5,1)"`
	Waist     float64 `gorm:"type:numeric(5,1)"`
	Hips      float64 `gorm:"type:numeric(5,1)"`
	Inseam    float64 `gorm:"type:numeric(5,1)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for measurement profiles.
func (MeasurementDTO) TableName() string {
	return "measurements"
}
