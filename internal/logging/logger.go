// Package logging configures logrus and carries request-scoped log fields
// through context.Context.
package logging

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

// Setup configures the standard logrus logger. format is "json" or "text".
// An unknown level falls back to info.
func Setup(level, format string, out io.Writer) {
	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	if out != nil {
		logrus.SetOutput(out)
	}
	logrus.SetLevel(logrus.InfoLevel)
	if l, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(l)
	}
}

// WithRequestID returns a copy of ctx carrying rid.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// FromContext returns an entry tagged with the request ID of ctx, if any.
func FromContext(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(logrus.StandardLogger())
	if rid := RequestID(ctx); rid != "" {
		e = e.WithField("request_id", rid)
	}
	return e
}

// Op returns a request-scoped entry for a named service operation.
func Op(ctx context.Context, operation string) *logrus.Entry {
	return FromContext(ctx).WithField("operation", operation)
}
