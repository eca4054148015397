package errutil

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// Handle logs err and reports it to Sentry when a Sentry client is initialized
func Handle(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	ctxlog.From(ctx).Error(msg, "error", err)

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}

	hub = hub.Clone()
	hub.Scope().SetTag("message", msg)
	if id := hub.CaptureException(err); id != nil {
		ctxlog.From(ctx).Debug("Reported error to Sentry", "event_id", string(*id))
	}
}

// InitSentry initializes the global Sentry client. An empty dsn disables reporting.
func InitSentry(dsn, env string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
	})
}

// FlushSentry waits for buffered Sentry events
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
