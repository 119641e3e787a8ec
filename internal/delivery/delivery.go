// Package delivery defines the contract every transport implementation
// (HTTP today, others later) exposes to the composition root.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops
// or fails; shutdown is handled through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
