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

type shelterRepository struct {
	db *gorm.DB
}

// NewShelterRepository is the constructor for shelterRepository.
func NewShelterRepository(db *gorm.DB) repository.ShelterRepository {
	return &shelterRepository{
		db: db,
	}
}

// ListAll returns every shelter in storage order.
func (repo *shelterRepository) ListAll(ctx context.Context) ([]*entity.Shelter, error) {
	var rows []*model.ShelterModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shelters")
	}

	shelters := make([]*entity.Shelter, 0, len(rows))
	for _, row := range rows {
		shelters = append(shelters, toShelterDomain(row))
	}

	return shelters, nil
}

// Create stores one shelter.
func (repo *shelterRepository) Create(ctx context.Context, shelter *entity.Shelter) error {
	row := fromShelterDomain(shelter)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateShelter
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shelter")
	}

	shelter.ID = row.ID

	return nil
}

// Exists reports whether a shelter with the same name and coordinate is stored.
func (repo *shelterRepository) Exists(ctx context.Context, name string, lat, lon float64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShelterModel{}).
		Where("name = ? AND lat = ? AND lon = ?", name, lat, lon).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shelter")
	}

	return count > 0, nil
}

func toShelterDomain(data *model.ShelterModel) *entity.Shelter {
	return &entity.Shelter{
		ID:               data.ID,
		Name:             data.Name,
		Ward:             data.Ward,
		Address:          data.Address,
		Type:             data.Type,
		Capacity:         data.Capacity,
		Lat:              data.Lat,
		Lon:              data.Lon,
		Phone:            data.Phone,
		OpeningCondition: data.OpeningCondition,
		Source:           data.Source,
	}
}

func fromShelterDomain(data *entity.Shelter) *model.ShelterModel {
	return &model.ShelterModel{
		ID:               data.ID,
		Name:             data.Name,
		Ward:             data.Ward,
		Address:          data.Address,
		Type:             data.Type,
		Capacity:         data.Capacity,
		Lat:              data.Lat,
		Lon:              data.Lon,
		Phone:            data.Phone,
		OpeningCondition: data.OpeningCondition,
		Source:           data.Source,
	}
}
