// Package logger is the slog setup shared by the phonefmt server and CLI, plus
// one helper per event the service emits so field names stay consistent.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

// Keys under which the HTTP middleware stores per-request values.
const (
	RequestIDKey contextKey = "request_id"
	UserIDKey    contextKey = "user_id"
)

type Logger struct {
	*slog.Logger
}

// New logs to stdout. See NewWithWriter for how env picks the format.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter creates a logger writing to w. Development gets a text
// handler at debug level, every other environment JSON at info level.
func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// Discard returns a logger that drops everything, for tests and quiet CLIs.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithContext tags every line with the request and caller ids the middleware
// left in ctx. Missing or empty ids are skipped.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	var attrs []any
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	if len(attrs) == 0 {
		return l
	}
	return &Logger{Logger: l.With(attrs...)}
}

// HTTPRequest is the access log line written once per API call.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// HTTPError records a call that ended in a 5xx.
func (l *Logger) HTTPError(method, path string, status int, err error, clientIP string) {
	l.Error("http_error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("client_ip", clientIP),
	)
}

// RateLimitExceeded records a client turned away by the per-IP limiter.
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}

// TableRebuilt logs a template table being compiled into the formatter.
func (l *Logger) TableRebuilt(source string, countries, templates int) {
	l.Info("phone_table_rebuilt",
		slog.String("source", source),
		slog.Int("countries", countries),
		slog.Int("templates", templates),
	)
}

// PhoneParsed logs a successful interpretation. Only the country and shape
// are recorded, never the digits.
func (l *Logger) PhoneParsed(country string, digitCount int, partial bool) {
	l.Debug("phone_parsed",
		slog.String("country", country),
		slog.Int("digit_count", digitCount),
		slog.Bool("partial", partial),
	)
}

// PhoneUnmatched logs input that no template accepted.
func (l *Logger) PhoneUnmatched(cause string, country string, digitCount int) {
	l.Debug("phone_unmatched",
		slog.String("cause", cause),
		slog.String("country", country),
		slog.Int("digit_count", digitCount),
	)
}
