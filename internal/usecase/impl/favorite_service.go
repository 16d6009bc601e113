package impl

import (
	"context"
	"log/slog"

	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	favoriteOpCreate = "create"
	favoriteOpList   = "list"
	favoriteOpDelete = "delete"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Clock        clockwork.Clock
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		clock:        params.Clock,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoriteService) observe(op string, err error) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	srv.metrics.FavoriteOps.WithLabelValues(op, outcome).Inc()
}

// Create stamps the owner fields from the identity: the account when
// authenticated and the device whenever one was sent.
func (srv *favoriteService) Create(ctx context.Context, identity entity.Identity, input *usecase.CreateFavoriteInput) (favorite *entity.Favorite, err error) {
	defer func() { srv.observe(favoriteOpCreate, err) }()

	if !identity.IsAuthenticated() && !identity.HasDevice() {
		// Nobody could ever list or delete such a row.
		return nil, errors.WithStack(domainerrors.ErrDeviceIDRequired)
	}

	now := srv.clock.Now().UTC()
	favorite = &entity.Favorite{
		Lat:             input.Lat,
		Lon:             input.Lon,
		Title:           input.Title,
		TerrainType:     input.TerrainType,
		RiskScore:       input.RiskScore,
		RiskDescription: input.RiskDescription,
		Explanation:     input.Explanation,
		SimpleWarnings:  input.SimpleWarnings,
		NearestShelter:  input.NearestShelter,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if identity.IsAuthenticated() {
		userID := identity.UserID
		favorite.OwnerUserID = &userID
	}
	if identity.HasDevice() {
		deviceID := identity.DeviceID
		favorite.OwnerDeviceID = &deviceID
	}

	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, errors.Wrap(err, "failed to create favorite")
	}

	srv.log(ctx).Debug("Favorite created", slog.Int64("favorite_id", favorite.ID), slog.String("auth", identity.Auth.String()))

	return favorite, nil
}

// List returns an empty, non-nil slice when the identity has no scope.
func (srv *favoriteService) List(ctx context.Context, identity entity.Identity) (favorites []*entity.Favorite, err error) {
	defer func() { srv.observe(favoriteOpList, err) }()

	scope := identity.Scope()
	if scope.IsNone() {
		return []*entity.Favorite{}, nil
	}

	favorites, err = srv.favoriteRepo.ListByScope(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// Delete answers not found both for missing rows and rows owned by others.
func (srv *favoriteService) Delete(ctx context.Context, identity entity.Identity, id int64) (err error) {
	defer func() { srv.observe(favoriteOpDelete, err) }()

	scope := identity.Scope()
	if scope.IsNone() {
		return errors.WithStack(domainerrors.ErrFavoriteNotFound)
	}

	if err := srv.favoriteRepo.DeleteByScope(ctx, id, scope); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.WithStack(domainerrors.ErrFavoriteNotFound)
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	srv.log(ctx).Debug("Favorite deleted", slog.Int64("favorite_id", id))

	return nil
}
