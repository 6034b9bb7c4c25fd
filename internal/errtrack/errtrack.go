// Package errtrack reports operational errors to an external tracker.
package errtrack

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

// Tracker captures errors with tags.
type Tracker interface {
	CaptureError(ctx context.Context, err error, tags map[string]string)
	Flush(timeout time.Duration)
}

// Noop discards everything.
type Noop struct{}

func (Noop) CaptureError(context.Context, error, map[string]string) {}

func (Noop) Flush(time.Duration) {}

var (
	_ Tracker = Noop{}
	_ Tracker = (*SentryTracker)(nil)
)

// SentryTracker implements Tracker via Sentry.
type SentryTracker struct {
	hub *sentry.Hub
}

// NewSentry initialises the Sentry client for dsn.
func NewSentry(dsn, environment string) (*SentryTracker, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return nil, err
	}
	return &SentryTracker{hub: sentry.CurrentHub()}, nil
}

// CaptureError sends err to Sentry on a cloned hub so tags do not leak
// between captures.
func (t *SentryTracker) CaptureError(ctx context.Context, err error, tags map[string]string) {
	hub := t.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
	})
	hub.CaptureException(err)
}

// Flush waits for buffered events to be delivered.
func (t *SentryTracker) Flush(timeout time.Duration) {
	t.hub.Flush(timeout)
}
