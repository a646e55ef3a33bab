// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second
