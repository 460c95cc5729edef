package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// JoinAll runs all tasks concurrently and waits for every one of them
// to finish or for the first failure, whichever comes first.
//
// Behavior:
//   - The first error cancels the context passed to the remaining tasks
//     and becomes the return value (fail fast)
//   - Panics inside a task are recovered and surfaced as errors with
//     the stack trace attached
//   - Tasks must not share mutable state; each owns its own inputs
func JoinAll(ctx context.Context, tasks ...func(ctx context.Context) error) error {
	eg, ctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = goerr.New("panic in task",
						goerr.V("recover", r),
						goerr.V("stack", string(debug.Stack())),
					)
				}
			}()

			return task(ctx)
		})
	}

	return eg.Wait()
}
