package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

// Context keys set by the auth middleware
const (
	AccountIDKey   contextKey = "account_id"
	AccountKindKey contextKey = "account_kind"
	RequestIDKey   contextKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logger with JSON output at the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// WithContext creates a logger with the calling account taken from the context
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("account", "unknown")
	}

	if id, ok := ctx.Value(AccountIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("account", id)
		if kind, ok := ctx.Value(AccountKindKey).(string); ok && kind != "" {
			logger.Entry = logger.Entry.WithField("account_kind", kind)
		}
	} else {
		logger.Entry = logger.Entry.WithField("account", "unknown")
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
