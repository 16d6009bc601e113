package database_test

import (
	"context"
	"testing"
	"time"

	"hazardmap/internal/domain/entity"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/infra/persistence/database"
	"hazardmap/internal/infra/persistence/database/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func newFavorite(title string, deviceID *string, userID *int64, createdAt time.Time) *entity.Favorite {
	return &entity.Favorite{
		Lat:           34.69,
		Lon:           135.50,
		Title:         title,
		OwnerDeviceID: deviceID,
		OwnerUserID:   userID,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestFavoriteRepository_DeviceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := database.NewFavoriteRepository(testdb.New(t))

	fav := newFavorite("自宅", strPtr("d1"), nil, time.Now().UTC())
	fav.RiskScore = new(int)
	*fav.RiskScore = 3
	require.NoError(t, repo.Create(ctx, fav))
	assert.NotZero(t, fav.ID)

	got, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fav.ID, got[0].ID)
	assert.Equal(t, "自宅", got[0].Title)
	assert.Equal(t, 3, *got[0].RiskScore)
	assert.Nil(t, got[0].OwnerUserID)

	other, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d2"})
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeNone})
	assert.ErrorIs(t, err, repository.ErrInvalidOwnerScope)
}

func TestFavoriteRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := database.NewFavoriteRepository(testdb.New(t))
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	older := newFavorite("older", nil, int64Ptr(7), base)
	newer := newFavorite("newer", nil, int64Ptr(7), base.Add(time.Hour))
	sameTime := newFavorite("same time, higher id", nil, int64Ptr(7), base.Add(time.Hour))
	for _, f := range []*entity.Favorite{older, newer, sameTime} {
		require.NoError(t, repo.Create(ctx, f))
	}

	got, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 7})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"same time, higher id", "newer", "older"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestFavoriteRepository_TransferOrphaned(t *testing.T) {
	ctx := context.Background()
	repo := database.NewFavoriteRepository(testdb.New(t))
	now := time.Now().UTC()

	orphanA := newFavorite("a", strPtr("d1"), nil, now)
	orphanB := newFavorite("b", strPtr("d1"), nil, now)
	ownedBy9 := newFavorite("owned", strPtr("d1"), int64Ptr(9), now)
	otherDevice := newFavorite("other", strPtr("d2"), nil, now)
	for _, f := range []*entity.Favorite{orphanA, orphanB, ownedBy9, otherDevice} {
		require.NoError(t, repo.Create(ctx, f))
	}

	moved, err := repo.TransferOrphaned(ctx, "d1", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	moved, err = repo.TransferOrphaned(ctx, "d1", 7)
	require.NoError(t, err)
	assert.Zero(t, moved, "second transfer must be a no-op")

	mine, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 7})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 9})
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, ownedBy9.ID, theirs[0].ID)

	// Claimed rows are no longer reachable through the device scope.
	deviceView, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d1"})
	require.NoError(t, err)
	assert.Empty(t, deviceView)

	untouched, err := repo.ListByScope(ctx, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d2"})
	require.NoError(t, err)
	assert.Len(t, untouched, 1)

	_, err = repo.TransferOrphaned(ctx, "", 7)
	assert.ErrorIs(t, err, repository.ErrInvalidOwnerScope)
}

func TestFavoriteRepository_DeleteByScope(t *testing.T) {
	ctx := context.Background()
	repo := database.NewFavoriteRepository(testdb.New(t))
	now := time.Now().UTC()

	deviceFav := newFavorite("device", strPtr("d1"), nil, now)
	userFav := newFavorite("user", strPtr("d1"), int64Ptr(7), now)
	require.NoError(t, repo.Create(ctx, deviceFav))
	require.NoError(t, repo.Create(ctx, userFav))

	tests := []struct {
		name  string
		id    int64
		scope entity.OwnerScope
		want  error
	}{
		{"other device", deviceFav.ID, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d2"}, repository.ErrFavoriteNotFound},
		{"other user", userFav.ID, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 8}, repository.ErrFavoriteNotFound},
		{"device cannot delete user-owned row", userFav.ID, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d1"}, repository.ErrFavoriteNotFound},
		{"no scope", deviceFav.ID, entity.OwnerScope{Kind: entity.ScopeNone}, repository.ErrFavoriteNotFound},
		{"missing id", 9999, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 7}, repository.ErrFavoriteNotFound},
		{"owner device", deviceFav.ID, entity.OwnerScope{Kind: entity.ScopeDevice, DeviceID: "d1"}, nil},
		{"owner user", userFav.ID, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 7}, nil},
		{"already deleted", userFav.ID, entity.OwnerScope{Kind: entity.ScopeUser, UserID: 7}, repository.ErrFavoriteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.DeleteByScope(ctx, tt.id, tt.scope)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
