package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"hazardmap/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushSubscription = "projects/local/subscriptions/hazardmap-device-claimed"
	localPushTimeout      = 10 * time.Second
)

// PushRequest is the body Cloud Pub/Sub POSTs to a push subscription.
type PushRequest struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushRequest; Data is base64.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
	OrderingKey string            `json:"orderingKey,omitempty"`
}

// localPushPublisher POSTs push requests straight to a subscriber during
// development, one request per event.
type localPushPublisher struct {
	endpoint string
	client   *http.Client
}

func newLocalPushPublisher(endpoint string) *localPushPublisher {
	return &localPushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
	}
}

func (p *localPushPublisher) PublishDeviceClaimed(ctx context.Context, event *service.DeviceClaimedEvent) error {
	env, err := encodeDeviceClaimed(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushRequest{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(env.data),
			Attributes:  env.attributes,
			MessageID:   event.EventID,
			PublishTime: event.OccurredAt.UTC().Format(time.RFC3339),
			OrderingKey: env.orderingKey,
		},
		Subscription: localPushSubscription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push event %s", event.EventID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for event %s", resp.StatusCode, event.EventID)
	}

	return nil
}

func (p *localPushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
