// Package delivery defines the contract every transport entry point
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is one serving surface of the application. Serve blocks until
// the surface stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
