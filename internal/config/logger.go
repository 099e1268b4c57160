package config

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// RequestIDKey carries the per-operation request id through contexts.
const RequestIDKey contextKey = "request_id"

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Logger returns the process-wide logger for call sites without a context.
func Logger() *logrus.Logger {
	return logger
}

// WithContext returns a log entry tagged with the request id stored in ctx,
// if any.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

// WithRequestID stores a request id in ctx for WithContext to pick up.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
