package repository

import (
	"context"

	"hazardmap/internal/domain/entity"
)

// FavoriteRepository persists saved locations. Every read and delete is
// restricted to an owner scope; a user scope never matches device-only rows.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	// ListByScope returns the scope's favorites, newest first.
	ListByScope(ctx context.Context, scope entity.OwnerScope) ([]*entity.Favorite, error)
	// DeleteByScope removes one favorite if it belongs to the scope.
	// Returns ErrFavoriteNotFound when nothing matched.
	DeleteByScope(ctx context.Context, id int64, scope entity.OwnerScope) error
	// TransferOrphaned assigns userID to every favorite of deviceID that has
	// no owning user yet and returns the number of rows moved.
	TransferOrphaned(ctx context.Context, deviceID string, userID int64) (int64, error)
}
