// Package lifecycle holds shared bounds for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as store pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
