package repository

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// ShelterRepository reads the emergency shelter reference table.
type ShelterRepository interface {
	// ListAll returns every shelter ordered by ascending id.
	ListAll(ctx context.Context) ([]*entity.Shelter, error)
	Create(ctx context.Context, shelter *entity.Shelter) error
	Exists(ctx context.Context, name string, lat, lon float64) (bool, error)
}
