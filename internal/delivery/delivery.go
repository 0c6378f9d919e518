// Package delivery defines the contract every transport-level server implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP API, Pub/Sub push worker, ...)
// started by the application entrypoint and stopped via fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
