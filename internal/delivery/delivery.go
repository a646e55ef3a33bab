// Package delivery defines the entrypoints that serve the application.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the app runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
