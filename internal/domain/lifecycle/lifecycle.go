// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations,
// such as pinging the database on start or draining the HTTP server on stop.
const DefaultTimeout = 10 * time.Second
