package service

import (
	"context"
	"time"
)

// DeviceClaimedEvent is published after anonymous favorites moved into an account.
type DeviceClaimedEvent struct {
	EventID     string    `json:"eventId"`
	UserID      int64     `json:"userId"`
	DeviceID    string    `json:"deviceId"`
	Transferred int64     `json:"transferred"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurredAt"`
	RequestID   string    `json:"requestId,omitempty"`
}

// Claim reasons.
const (
	ClaimReasonRegister = "register"
	ClaimReasonClaim    = "claim_device"
)

// EventPublisher delivers domain events to the configured broker.
type EventPublisher interface {
	PublishDeviceClaimed(ctx context.Context, event *DeviceClaimedEvent) error
	Close() error
}
