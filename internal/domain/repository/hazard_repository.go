package repository

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// HazardRepository reads the terrain risk reference table.
type HazardRepository interface {
	// ListAll returns every hazard record ordered by ascending id.
	ListAll(ctx context.Context) ([]*entity.HazardRecord, error)
	// Create stores one record. Used by the offline importer only.
	Create(ctx context.Context, record *entity.HazardRecord) error
	// ExistsAt reports whether a record already sits on the exact coordinate.
	ExistsAt(ctx context.Context, lat, lon float64) (bool, error)
}
