package decorator

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Command any

	// CommandHandler runs a state-changing use case. Unlike the queries it
	// returns the affected entity, e.g. the recorded lookup.
	CommandHandler[C Command, R any] interface {
		Handle(context.Context, C) (R, error)
	}
)

func ApplyCommandDecorators[C Command, R any](
	handler CommandHandler[C, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CommandHandler[C, R] {
	var decorated CommandHandler[C, R] = commandTracingDecorator[C, R]{
		base:           handler,
		tracerProvider: tracerProvider,
	}

	decorated = commandMetricsDecorator[C, R]{base: decorated, client: metricsClient}

	return commandLoggingDecorator[C, R]{base: decorated, logger: log}
}
