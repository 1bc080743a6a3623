// Package delivery defines the transport-facing contracts of the
// application.
package delivery

import "context"

// Delivery is a long-running transport frontend (HTTP server).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
