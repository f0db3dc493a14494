package logger

import (
	"context"
	"io"
	"os"

	"safety-tracker-backend/internal/auth"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logger: JSON to stdout at the given level
func Setup(level string) {
	SetupWithOutput(level, os.Stdout)
}

// SetupWithOutput is Setup with a custom destination
func SetupWithOutput(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// NewWithEntry wraps an existing entry, mostly useful in tests with a private logrus.Logger
func NewWithEntry(entry *logrus.Entry) *Logger {
	return &Logger{Entry: entry}
}

// WithContext creates a logger carrying the identity found in ctx
func WithContext(ctx context.Context) *Logger {
	return New().WithIdentity(auth.FromContext(ctx))
}

// WithIdentity adds the acting identity as the "user" field
func (l *Logger) WithIdentity(identity auth.Identity) *Logger {
	user := identity.String()
	if user == "" {
		user = "unknown"
	}
	return l.WithField("user", user)
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
