// Package pubsub publishes device claim events to Cloud Pub/Sub, or to a
// local push endpoint during development.
package pubsub

import (
	"context"
	"log/slog"

	"hazardmap/config"
	"hazardmap/internal/domain/constants"
	"hazardmap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type noopPublisher struct{}

func (noopPublisher) PublishDeviceClaimed(context.Context, *service.DeviceClaimedEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }

// PublisherParams holds the dependencies of NewEventPublisher.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the transport named by pubsub.provider and closes
// it with the application.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case "", constants.PubSubProviderNone:
		params.Logger.Info("device claim events are not published")

		return noopPublisher{}, nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		publisher = newLocalPushPublisher(cfg.LocalEndpoint)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		google, err := newGooglePublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, err
		}
		publisher = google

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	params.Logger.Info("device claim publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
