package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"hazardmap/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends claim events to a Cloud Pub/Sub topic with message
// ordering on, keyed by device.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

func newGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*googlePublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishDeviceClaimed(ctx context.Context, event *service.DeviceClaimedEvent) error {
	env, err := encodeDeviceClaimed(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        env.data,
		Attributes:  env.attributes,
		OrderingKey: env.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(env.orderingKey)

		return errors.Wrapf(err, "failed to publish event %s to %s", event.EventID, p.topic)
	}

	p.logger.Debug("device claim published",
		slog.String("event_id", event.EventID),
		slog.String("message_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
