// Package delivery defines the contract every transport front end fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started from main.
// Serve blocks until the server stops; shutdown runs through fx lifecycle
// hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
