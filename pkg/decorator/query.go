package decorator

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Query  any
	Result any

	QueryHandler[Q Query, R Result] interface {
		Execute(ctx context.Context, query Q) (R, error)
	}
)

// ApplyQueryDecorators logs, counts and traces every execution of handler.
// Spans start innermost so the recorded duration excludes logging.
func ApplyQueryDecorators[Q Query, R Result](
	handler QueryHandler[Q, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) QueryHandler[Q, R] {
	var decorated QueryHandler[Q, R] = queryTracingDecorator[Q, R]{
		base:           handler,
		tracerProvider: tracerProvider,
	}

	decorated = queryMetricsDecorator[Q, R]{base: decorated, client: metricsClient}

	return queryLoggingDecorator[Q, R]{base: decorated, logger: log}
}
