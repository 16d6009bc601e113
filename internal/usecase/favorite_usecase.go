package usecase

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// CreateFavoriteInput carries a location to save and an optional snapshot of
// the assessment shown for it.
type CreateFavoriteInput struct {
	Lat             float64
	Lon             float64
	Title           string
	TerrainType     *string
	RiskScore       *int
	RiskDescription *string
	Explanation     *string
	SimpleWarnings  *string
	NearestShelter  *string
}

// FavoriteUsecase defines the ownership-scoped operations on favorites.
type FavoriteUsecase interface {
	// Create stores a favorite owned by the identity's account and/or device.
	Create(ctx context.Context, identity entity.Identity, input *CreateFavoriteInput) (*entity.Favorite, error)

	// List returns the favorites visible to the identity, newest first.
	// An identity with neither account nor device sees nothing.
	List(ctx context.Context, identity entity.Identity) ([]*entity.Favorite, error)

	// Delete removes a favorite the identity owns. Favorites owned by someone
	// else are reported as not found.
	Delete(ctx context.Context, identity entity.Identity, id int64) error
}
