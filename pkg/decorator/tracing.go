package decorator

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	otelTrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/architeacher/imei-lookup/pkg/decorator"

type (
	queryTracingDecorator[Q Query, R Result] struct {
		base           QueryHandler[Q, R]
		tracerProvider otelTrace.TracerProvider
	}

	commandTracingDecorator[C Command, R any] struct {
		base           CommandHandler[C, R]
		tracerProvider otelTrace.TracerProvider
	}
)

func (d queryTracingDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	ctx, span := startSpan(ctx, d.tracerProvider, "query."+actionName(query))
	defer span.End()

	result, err := d.base.Execute(ctx, query)
	finishSpan(span, err)

	return result, err
}

func (d commandTracingDecorator[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	ctx, span := startSpan(ctx, d.tracerProvider, "command."+actionName(cmd))
	defer span.End()

	result, err := d.base.Handle(ctx, cmd)
	finishSpan(span, err)

	return result, err
}

func startSpan(ctx context.Context, tp otelTrace.TracerProvider, name string) (context.Context, otelTrace.Span) {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}

	return tp.Tracer(tracerName).Start(ctx, name)
}

func finishSpan(span otelTrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return
	}

	span.SetStatus(codes.Ok, "")
}
