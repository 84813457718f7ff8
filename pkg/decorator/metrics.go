package decorator

import (
	"context"
	"time"

	"github.com/architeacher/imei-lookup/pkg/metrics"
)

type (
	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}

	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}
)

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	start := time.Now()
	result, err := d.base.Execute(ctx, query)

	record(ctx, d.client, "queries", actionName(query), start, err)

	return result, err
}

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	start := time.Now()
	result, err := d.base.Handle(ctx, cmd)

	record(ctx, d.client, "commands", actionName(cmd), start, err)

	return result, err
}

func record(ctx context.Context, client metrics.Client, kind, action string, start time.Time, err error) {
	if client == nil {
		return
	}

	prefix := kind + "." + action
	client.Observe(ctx, prefix+".duration", time.Since(start).Seconds())

	if err != nil {
		client.Inc(ctx, prefix+".failure", 1)

		return
	}

	client.Inc(ctx, prefix+".success", 1)
}
