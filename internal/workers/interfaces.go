// Package workers provides abstractions for managing background workers
// of the client, such as the session auto-lock.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker without blocking; the worker runs until ctx is
// cancelled or Stop is called. Stop waits for the worker to exit and must be
// safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
