// Package queries holds one immutable query or command per use case and the
// handler that executes it against a single repository.
package queries

import "context"

// Handler executes one query or command.
type Handler[Q any, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}
