// Package delivery defines the contract every presentation surface
// implements so the entry point can start them uniformly.
package delivery

import "context"

// Delivery is a running presentation surface.
type Delivery interface {
	// Serve runs the surface until it finishes or the context is canceled.
	Serve(ctx context.Context) error
}
