package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/caskbump/pkg/utils/errutil"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine detached from ctx cancellation.
// The ctxlog logger of ctx is carried over. Returned errors and panics are
// logged and reported through errutil.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(stack))

				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.Clone().CaptureException(fmt.Errorf("panic in async handler: %v", r))
				}
			}
		}()

		if err := handler(newCtx); err != nil {
			errutil.Handle(newCtx, "error in async handler", err)
		}
	}()
}

// newBackgroundContext returns context.Background() carrying the logger of ctx
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
