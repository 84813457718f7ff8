package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const (
	JSONLoggingFormat    = "json"
	ConsoleLoggingFormat = "console"

	ContextKeyRequestID     contextKey = "requestID"
	ContextKeyCorrelationID contextKey = "correlationID"
	ContextKeySubject       contextKey = "subject"
)

type Logger struct {
	zerolog.Logger
}

// New builds a logger writing to stdout.
func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stdout)
}

// NewWithWriter builds a logger for the given level and format. Unknown
// levels fall back to info, "warning" is accepted as an alias of "warn".
func NewWithWriter(level, format string, w io.Writer) Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))

	var base zerolog.Logger

	switch strings.ToLower(format) {
	case JSONLoggingFormat:
		base = zerolog.New(w)
	default:
		base = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	return Logger{
		Logger: base.With().Timestamp().Logger(),
	}
}

func ParseLevel(level string) zerolog.Level {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "warning" {
		normalized = zerolog.LevelWarnValue
	}

	lvl, err := zerolog.ParseLevel(normalized)
	if err != nil || normalized == "" {
		return zerolog.InfoLevel
	}

	return lvl
}

// Component returns a child logger tagged with the component name.
func (l Logger) Component(name string) Logger {
	return Logger{Logger: l.With().Str("component", name).Logger()}
}

// WithContext enriches the logger with request scoped identifiers.
func (l Logger) WithContext(ctx context.Context) zerolog.Logger {
	fields := l.With()

	for key, field := range map[contextKey]string{
		ContextKeyCorrelationID: "correlation_id",
		ContextKeyRequestID:     "request_id",
		ContextKeySubject:       "user_id",
	} {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			fields = fields.Str(field, value)
		}
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		fields = fields.
			Str("trace_id", spanCtx.TraceID().String()).
			Str("span_id", spanCtx.SpanID().String())
	}

	return fields.Logger()
}
