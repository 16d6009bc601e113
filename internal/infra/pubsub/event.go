package pubsub

import (
	"encoding/json"
	"strconv"

	"hazardmap/internal/domain/constants"
	"hazardmap/internal/domain/service"

	"github.com/pkg/errors"
)

// envelope is a DeviceClaimedEvent ready for either transport.
// Claims for one device share an ordering key so a subscriber sees them in
// publish order.
type envelope struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeDeviceClaimed(event *service.DeviceClaimedEvent) (*envelope, error) {
	if event == nil {
		return nil, errors.New("device claimed event is nil")
	}
	if event.DeviceID == "" {
		return nil, errors.Errorf("device claimed event %s has no device id", event.EventID)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode event %s", event.EventID)
	}

	attributes := map[string]string{
		"event_type":  constants.DeviceClaimedEventType,
		"event_id":    event.EventID,
		"user_id":     strconv.FormatInt(event.UserID, 10),
		"device_id":   event.DeviceID,
		"reason":      event.Reason,
		"transferred": strconv.FormatInt(event.Transferred, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &envelope{
		data:        data,
		attributes:  attributes,
		orderingKey: event.DeviceID,
	}, nil
}
