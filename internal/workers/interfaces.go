// Package workers runs the client's long-lived background loops (the periodic
// refresh, the push listener, the busy logger) under one context.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the loop fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
