package decorator

import (
	"context"
	"time"

	"github.com/architeacher/imei-lookup/pkg/logger"
)

type (
	queryLoggingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		logger logger.Logger
	}

	commandLoggingDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		logger logger.Logger
	}
)

func (d queryLoggingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	action := actionName(query)
	log := d.logger.WithContext(ctx).With().Str("query", action).Logger()
	start := time.Now()

	log.Debug().Msg("executing query")

	defer func() {
		event := log.Debug()
		if err != nil {
			event = log.Error().Err(err)
		}

		event.Int64("duration_ms", time.Since(start).Milliseconds()).Msg("query executed")
	}()

	return d.base.Execute(ctx, query)
}

func (d commandLoggingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	action := actionName(cmd)
	log := d.logger.WithContext(ctx).With().Str("command", action).Logger()
	start := time.Now()

	log.Debug().Msg("executing command")

	defer func() {
		event := log.Info()
		if err != nil {
			event = log.Error().Err(err)
		}

		event.Int64("duration_ms", time.Since(start).Milliseconds()).Msg("command executed")
	}()

	return d.base.Handle(ctx, cmd)
}
