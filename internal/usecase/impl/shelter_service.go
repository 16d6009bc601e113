package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"hazardmap/config"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/geo"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shelterService struct {
	shelterRepo  repository.ShelterRepository
	defaultLimit int
	maxLimit     int
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// ShelterServiceParams holds dependencies for ShelterService, injected by Fx.
type ShelterServiceParams struct {
	fx.In

	ShelterRepo repository.ShelterRepository
	Config      *config.Config
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewShelterService creates a new shelter ranking service.
func NewShelterService(params ShelterServiceParams) usecase.ShelterUsecase {
	return &shelterService{
		shelterRepo:  params.ShelterRepo,
		defaultLimit: params.Config.Shelters.DefaultLimit,
		maxLimit:     params.Config.Shelters.MaxLimit,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// Nearest ranks every shelter by haversine distance. Equal distances keep
// storage order.
func (srv *shelterService) Nearest(ctx context.Context, input *usecase.NearestSheltersInput) ([]*entity.RankedShelter, error) {
	srv.metrics.ShelterQueries.Inc()

	shelters, err := srv.shelterRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shelters")
	}

	ranked := make([]*entity.RankedShelter, 0, len(shelters))
	for _, shelter := range shelters {
		ranked = append(ranked, &entity.RankedShelter{
			Shelter:    *shelter,
			DistanceKm: geo.HaversineKm(input.Lat, input.Lon, shelter.Lat, shelter.Lon),
		})
	}

	slices.SortStableFunc(ranked, func(a, b *entity.RankedShelter) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	limit := srv.clampLimit(input.Limit)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// clampLimit applies the default and keeps the limit within [1, maxLimit].
func (srv *shelterService) clampLimit(limit *int) int {
	if limit == nil {
		return srv.defaultLimit
	}

	return max(1, min(*limit, srv.maxLimit))
}
