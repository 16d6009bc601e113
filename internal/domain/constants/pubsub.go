package constants

// Event publisher providers accepted in pubsub.provider.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DeviceClaimedEventType is the event_type attribute of device claim messages.
const DeviceClaimedEventType = "device.claimed"
