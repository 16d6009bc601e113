package usecase

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// NearestSheltersInput defines a shelter ranking query. A nil Limit selects
// the configured default.
type NearestSheltersInput struct {
	Lat   float64
	Lon   float64
	Limit *int
}

// ShelterUsecase ranks emergency shelters by great-circle distance.
type ShelterUsecase interface {
	Nearest(ctx context.Context, input *NearestSheltersInput) ([]*entity.RankedShelter, error)
}
