// Package delivery defines the contract shared by every inbound server.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, worker endpoint).
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
