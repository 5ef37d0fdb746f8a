// Package delivery defines the transport-facing entry points of the
// application. Each transport (HTTP, future CLIs, ...) implements Delivery
// and is started by the composition root.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
