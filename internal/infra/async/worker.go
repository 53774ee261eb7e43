package async

import "context"

// Worker runs until ctx is cancelled and calls done on exit.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
