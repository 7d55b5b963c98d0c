// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is a transport that serves the application until its context is
// cancelled or the surrounding lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
