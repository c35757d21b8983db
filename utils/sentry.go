package utils

import (
	"fmt"

	"legalassist/config"

	"github.com/getsentry/sentry-go"
)

// InitSentry configures the global hub. Callers flush on shutdown.
func InitSentry(dsn string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      config.GetEnv(),
		Release:          "legalassist",
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// CaptureError reports err with extra context. It is a no-op when Sentry is not configured.
func CaptureError(err error, context map[string]interface{}) {
	hub := sentry.CurrentHub()
	if hub == nil || hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range context {
			scope.SetExtra(k, v)
		}
		hub.CaptureException(err)
	})
}
