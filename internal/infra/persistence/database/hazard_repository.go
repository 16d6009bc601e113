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

type hazardRepository struct {
	db *gorm.DB
}

// NewHazardRepository is the constructor for hazardRepository.
func NewHazardRepository(db *gorm.DB) repository.HazardRepository {
	return &hazardRepository{
		db: db,
	}
}

// ListAll returns every record in storage order.
func (repo *hazardRepository) ListAll(ctx context.Context) ([]*entity.HazardRecord, error) {
	var rows []*model.TerrainRiskModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hazard records")
	}

	records := make([]*entity.HazardRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toHazardDomain(row))
	}

	return records, nil
}

// Create stores one record.
func (repo *hazardRepository) Create(ctx context.Context, record *entity.HazardRecord) error {
	row := fromHazardDomain(record)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateHazardPoint
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hazard record")
	}

	record.ID = row.ID

	return nil
}

// ExistsAt reports whether a record already sits on the coordinate.
func (repo *hazardRepository) ExistsAt(ctx context.Context, lat, lon float64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TerrainRiskModel{}).
		Where("lat = ? AND lon = ?", lat, lon).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check hazard record")
	}

	return count > 0, nil
}

func toHazardDomain(data *model.TerrainRiskModel) *entity.HazardRecord {
	return &entity.HazardRecord{
		ID:              data.ID,
		Lat:             data.Lat,
		Lon:             data.Lon,
		X:               data.X,
		Y:               data.Y,
		ElevScore:       data.ElevScore,
		SlopeScore:      data.SlopeScore,
		RiverScore:      data.RiverScore,
		FloodRisk:       data.FloodRisk,
		LandslideRisk:   data.LandslideRisk,
		TsunamiRisk:     data.TsunamiRisk,
		OverallRisk:     data.OverallRisk,
		RiskDescription: data.RiskDescription,
	}
}

func fromHazardDomain(data *entity.HazardRecord) *model.TerrainRiskModel {
	return &model.TerrainRiskModel{
		ID:              data.ID,
		Lat:             data.Lat,
		Lon:             data.Lon,
		X:               data.X,
		Y:               data.Y,
		ElevScore:       data.ElevScore,
		SlopeScore:      data.SlopeScore,
		RiverScore:      data.RiverScore,
		FloodRisk:       data.FloodRisk,
		LandslideRisk:   data.LandslideRisk,
		TsunamiRisk:     data.TsunamiRisk,
		OverallRisk:     data.OverallRisk,
		RiskDescription: data.RiskDescription,
	}
}
