package impl

import (
	"context"
	"log/slog"

	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/entity"
	domainerrors "hazardmap/internal/domain/errors"
	"hazardmap/internal/domain/repository"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/infra/metrics"
	"hazardmap/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	favoriteRepo repository.FavoriteRepository
	notifier     *claimNotifier
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics
	Clock        clockwork.Clock
	Logger       *slog.Logger
}

// NewIdentityService creates a new identity reconciliation service.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		favoriteRepo: params.FavoriteRepo,
		notifier: &claimNotifier{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			clock:     params.Clock,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TransferOrphaned adopts the device's unowned favorites into the account.
func (srv *identityService) TransferOrphaned(ctx context.Context, deviceID string, userID int64) (int64, error) {
	if deviceID == "" {
		return 0, errors.WithStack(domainerrors.ErrDeviceIDRequired)
	}

	transferred, err := srv.favoriteRepo.TransferOrphaned(ctx, deviceID, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to transfer orphaned favorites", slog.Int64("user_id", userID), slog.String("device_id", deviceID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to transfer orphaned favorites")
	}

	srv.log(ctx).Info("Device claimed", slog.Int64("user_id", userID), slog.String("device_id", deviceID), slog.Int64("transferred", transferred))
	srv.notifier.notify(ctx, srv.log(ctx), userID, deviceID, transferred, service.ClaimReasonClaim)

	return transferred, nil
}

// ClaimDevice requires an authenticated identity that also names a device.
func (srv *identityService) ClaimDevice(ctx context.Context, identity entity.Identity) (int64, error) {
	if !identity.IsAuthenticated() {
		return 0, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if !identity.HasDevice() {
		return 0, errors.WithStack(domainerrors.ErrDeviceIDRequired)
	}

	return srv.TransferOrphaned(ctx, identity.DeviceID, identity.UserID)
}
