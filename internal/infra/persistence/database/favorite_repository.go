package database

import (
	"context"

	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create persists a new favorite and fills in its generated fields.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required favorite information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt
	favorite.UpdatedAt = favoriteM.UpdatedAt

	return nil
}

// ListByScope returns the favorites visible to scope, newest first.
func (repo *favoriteRepository) ListByScope(ctx context.Context, scope entity.OwnerScope) ([]*entity.Favorite, error) {
	query, err := scoped(repo.db.WithContext(ctx), scope)
	if err != nil {
		return nil, err
	}

	var favoriteModels []*model.FavoriteModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// DeleteByScope removes one favorite with a single scoped DELETE.
func (repo *favoriteRepository) DeleteByScope(ctx context.Context, id int64, scope entity.OwnerScope) error {
	query, err := scoped(repo.db.WithContext(ctx), scope)
	if err != nil {
		return repository.ErrFavoriteNotFound
	}

	result := query.
		Where("id = ?", id).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// TransferOrphaned claims every unowned favorite of deviceID for userID.
// The user_id IS NULL predicate makes repeated or concurrent calls no-ops.
func (repo *favoriteRepository) TransferOrphaned(ctx context.Context, deviceID string, userID int64) (int64, error) {
	if deviceID == "" {
		return 0, repository.ErrInvalidOwnerScope
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("device_id = ? AND user_id IS NULL", deviceID).
		Update("user_id", userID)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to transfer orphaned favorites")
	}

	return result.RowsAffected, nil
}

// scoped restricts query to the rows scope may see. A device scope only
// matches rows that no account owns yet.
func scoped(query *gorm.DB, scope entity.OwnerScope) (*gorm.DB, error) {
	switch scope.Kind {
	case entity.ScopeUser:
		return query.Where("user_id = ?", scope.UserID), nil
	case entity.ScopeDevice:
		if scope.DeviceID == "" {
			return nil, repository.ErrInvalidOwnerScope
		}

		return query.Where("device_id = ? AND user_id IS NULL", scope.DeviceID), nil
	default:
		return nil, repository.ErrInvalidOwnerScope
	}
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:              data.ID,
		Lat:             data.Lat,
		Lon:             data.Lon,
		Title:           data.Title,
		TerrainType:     data.TerrainType,
		RiskScore:       data.RiskScore,
		RiskDescription: data.RiskDescription,
		Explanation:     data.Explanation,
		SimpleWarnings:  data.SimpleWarnings,
		NearestShelter:  data.NearestShelter,
		OwnerDeviceID:   data.DeviceID,
		OwnerUserID:     data.UserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:              data.ID,
		Lat:             data.Lat,
		Lon:             data.Lon,
		Title:           data.Title,
		TerrainType:     data.TerrainType,
		RiskScore:       data.RiskScore,
		RiskDescription: data.RiskDescription,
		Explanation:     data.Explanation,
		SimpleWarnings:  data.SimpleWarnings,
		NearestShelter:  data.NearestShelter,
		DeviceID:        data.OwnerDeviceID,
		UserID:          data.OwnerUserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
