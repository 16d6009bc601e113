// Package lifecycle holds process-wide start/stop constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second
