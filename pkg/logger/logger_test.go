package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "upper case error", level: "ERROR", expected: zerolog.ErrorLevel},
		{name: "warning alias", level: "warning", expected: zerolog.WarnLevel},
		{name: "padded warn", level: "  warn ", expected: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", expected: zerolog.InfoLevel},
		{name: "unknown falls back to info", level: "verbose", expected: zerolog.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, logger.ParseLevel(tc.level))
		})
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter("info", logger.JSONLoggingFormat, &buf)

	log.Info().Str("identifier", "490154203237518").Msg("classified")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "classified", entry["message"])
	require.Equal(t, "490154203237518", entry["identifier"])
	require.Contains(t, entry, "time")
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		ctx      func() context.Context
		expected map[string]string
		absent   []string
	}{
		{
			name: "adds request and correlation identifiers",
			ctx: func() context.Context {
				ctx := context.WithValue(context.Background(), logger.ContextKeyRequestID, "req-1")

				return context.WithValue(ctx, logger.ContextKeyCorrelationID, "corr-1")
			},
			expected: map[string]string{"request_id": "req-1", "correlation_id": "corr-1"},
			absent:   []string{"user_id", "trace_id"},
		},
		{
			name: "adds authenticated subject",
			ctx: func() context.Context {
				return context.WithValue(context.Background(), logger.ContextKeySubject, "operator-7")
			},
			expected: map[string]string{"user_id": "operator-7"},
			absent:   []string{"request_id"},
		},
		{
			name: "skips empty values",
			ctx: func() context.Context {
				return context.WithValue(context.Background(), logger.ContextKeyRequestID, "")
			},
			absent: []string{"request_id", "correlation_id", "user_id"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewBufferedTestLogger(&buf)

			ctxLogger := log.WithContext(tc.ctx())
			ctxLogger.Info().Msg("test message")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for key, value := range tc.expected {
				require.Equal(t, value, entry[key])
			}

			for _, key := range tc.absent {
				require.NotContains(t, entry, key)
			}
		})
	}
}

func TestComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewBufferedTestLogger(&buf).Component("dhru")

	log.Info().Msg("ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "dhru", entry["component"])
}
