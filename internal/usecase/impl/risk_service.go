// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"hazardmap/config"
	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/domain/risk"
	"hazardmap/internal/geo"
	"hazardmap/internal/geo/spatial"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// riskService implements the RiskUsecase interface.
type riskService struct {
	hazardRepo    repository.HazardRepository
	buildIndex    spatial.Builder
	maxDistance   float64
	defaultLocale language.Tag
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// RiskServiceParams holds dependencies for RiskService, injected by Fx.
type RiskServiceParams struct {
	fx.In

	HazardRepo repository.HazardRepository
	Config     *config.Config
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// NewRiskService builds the risk lookup with the configured spatial strategy.
func NewRiskService(params RiskServiceParams) (usecase.RiskUsecase, error) {
	builder, err := spatial.NewBuilder(params.Config.Spatial.Strategy, params.Config.Spatial.GridCellSizeMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure hazard index")
	}

	defaultLocale, err := language.Parse(params.Config.Risk.DefaultLocale)
	if err != nil {
		defaultLocale = language.Japanese
	}

	return &riskService{
		hazardRepo:    params.HazardRepo,
		buildIndex:    builder,
		maxDistance:   params.Config.Risk.MaxDistanceMeters,
		defaultLocale: defaultLocale,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *riskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearest scans every hazard record. When the table is empty the
// returned distance is +Inf.
func (srv *riskService) FindNearest(ctx context.Context, lat, lon float64) (*entity.HazardRecord, float64, error) {
	started := time.Now()
	defer func() {
		srv.metrics.RiskLookupDuration.Observe(time.Since(started).Seconds())
	}()

	records, err := srv.hazardRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list hazard records")
	}
	srv.metrics.HazardRecords.Set(float64(len(records)))

	points := make([]orb.Point, len(records))
	for i, record := range records {
		points[i] = orb.Point{record.X, record.Y}
	}

	idx, dist, ok := srv.buildIndex(points).Nearest(geo.Project(lat, lon))
	if !ok {
		return nil, math.Inf(1), nil
	}
	if dist > srv.maxDistance {
		return nil, dist, nil
	}

	return records[idx], dist, nil
}

// Lookup resolves the nearest record and explains it in the caller's language.
func (srv *riskService) Lookup(ctx context.Context, input *usecase.RiskLookupInput) (*usecase.RiskResult, error) {
	explainer := risk.NewExplainer(risk.ParseAcceptLanguage(input.AcceptLanguage, srv.defaultLocale))

	record, dist, err := srv.FindNearest(ctx, input.Lat, input.Lon)
	if err != nil {
		srv.metrics.RiskLookups.WithLabelValues(metrics.OutcomeError).Inc()
		srv.log(ctx).Error("Risk lookup failed", slog.Float64("lat", input.Lat), slog.Float64("lon", input.Lon), slog.Any("error", err))

		return nil, err
	}

	if record == nil {
		srv.metrics.RiskLookups.WithLabelValues(metrics.OutcomeNoMatch).Inc()
		srv.log(ctx).Debug("No hazard record in range", slog.Float64("lat", input.Lat), slog.Float64("lon", input.Lon))

		return &usecase.RiskResult{
			Status:      usecase.RiskStatusNoMatch,
			Explanation: explainer.NoMatch(),
			Language:    explainer.Language(),
		}, nil
	}

	srv.metrics.RiskLookups.WithLabelValues(metrics.OutcomeOK).Inc()

	overall := record.OverallRisk
	scores := risk.Scores{
		Elev:  record.ElevScore,
		Slope: record.SlopeScore,
		River: record.RiverScore,
	}

	return &usecase.RiskResult{
		Status:          usecase.RiskStatusOK,
		OverallRisk:     &overall,
		RiskDescription: record.RiskDescription,
		Explanation:     explainer.Explain(scores, record.RiskDescription),
		DistanceM:       &dist,
		Language:        explainer.Language(),
	}, nil
}
