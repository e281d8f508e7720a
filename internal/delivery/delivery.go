// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a transport surface (HTTP API, worker push endpoint) that can
// be started by the application entrypoint.
type Delivery interface {
	// Serve blocks, running the transport until the context is cancelled or
	// the server is shut down.
	Serve(ctx context.Context) error
}
