package impl

import (
	"context"
	"log/slog"

	deliverycontext "hazardmap/internal/delivery/context"
	"hazardmap/internal/domain/service"
	"hazardmap/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// claimNotifier records a completed transfer and publishes it best-effort.
type claimNotifier struct {
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	clock     clockwork.Clock
}

func (n *claimNotifier) notify(ctx context.Context, logger *slog.Logger, userID int64, deviceID string, transferred int64, reason string) {
	n.metrics.DeviceClaims.WithLabelValues(reason).Inc()
	if transferred == 0 {
		return
	}
	n.metrics.FavoritesTransferred.Add(float64(transferred))

	event := &service.DeviceClaimedEvent{
		EventID:     uuid.NewString(),
		UserID:      userID,
		DeviceID:    deviceID,
		Transferred: transferred,
		Reason:      reason,
		OccurredAt:  n.clock.Now().UTC(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}

	// The transfer is already committed; a broker outage must not fail the request.
	if err := n.publisher.PublishDeviceClaimed(ctx, event); err != nil {
		n.metrics.EventPublishFailures.Inc()
		logger.Warn("Failed to publish device claimed event",
			slog.Int64("user_id", userID),
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
	}
}
