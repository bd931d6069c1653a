// Package delivery contains the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long-running inbound server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
