package loader

import (
	"context"
	"log/slog"

	"hazardmap/internal/domain/entity"
	"hazardmap/internal/domain/repository"

	"github.com/pkg/errors"
)

// Result counts what an import did with the parsed rows.
type Result struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"` // already present
	Rejected int `json:"rejected"`
}

// Importer stores parsed reference data, skipping rows that already exist.
// Re-running an import over the same file is a no-op.
type Importer struct {
	hazards  repository.HazardRepository
	shelters repository.ShelterRepository
	logger   *slog.Logger
}

// NewImporter is the constructor for Importer.
func NewImporter(hazards repository.HazardRepository, shelters repository.ShelterRepository, logger *slog.Logger) *Importer {
	return &Importer{
		hazards:  hazards,
		shelters: shelters,
		logger:   logger,
	}
}

// ImportHazards stores records whose exact (lat, lon) is not yet present.
func (im *Importer) ImportHazards(ctx context.Context, parsed *HazardCSV) (Result, error) {
	res := Result{Rejected: len(parsed.Rejected)}
	for _, rowErr := range parsed.Rejected {
		im.logger.Warn("Skipping malformed hazard row", slog.Int("line", rowErr.Line), slog.Any("error", rowErr.Err))
	}

	for _, record := range parsed.Records {
		exists, err := im.hazards.ExistsAt(ctx, record.Lat, record.Lon)
		if err != nil {
			return res, errors.WithStack(err)
		}
		if exists {
			res.Skipped++

			continue
		}

		if err := im.hazards.Create(ctx, record); err != nil {
			if errors.Is(err, repository.ErrDuplicateHazardPoint) {
				res.Skipped++

				continue
			}

			return res, errors.Wrapf(err, "failed to store hazard record at %f,%f", record.Lat, record.Lon)
		}
		res.Inserted++
	}

	return res, nil
}

// ImportShelters stores shelters whose (name, lat, lon) is not yet present.
func (im *Importer) ImportShelters(ctx context.Context, parsed *ShelterGeoJSON) (Result, error) {
	res := Result{Rejected: parsed.Ignored}

	for _, shelter := range parsed.Shelters {
		stored, err := im.storeShelter(ctx, shelter)
		if err != nil {
			return res, err
		}
		if stored {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	return res, nil
}

func (im *Importer) storeShelter(ctx context.Context, shelter *entity.Shelter) (bool, error) {
	exists, err := im.shelters.Exists(ctx, shelter.Name, shelter.Lat, shelter.Lon)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if exists {
		return false, nil
	}

	if err := im.shelters.Create(ctx, shelter); err != nil {
		if errors.Is(err, repository.ErrDuplicateShelter) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to store shelter %q", shelter.Name)
	}

	return true, nil
}
