package commands

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	PurgeCacheCommand struct{}

	PurgeCacheCommandHandler = decorator.CommandHandler[PurgeCacheCommand, int64]

	purgeCacheCommandHandler struct {
		cache ports.ServicesCache
	}
)

// NewPurgeCacheCommandHandler accepts a nil cache; purging then reports
// ErrCacheUnavailable.
func NewPurgeCacheCommandHandler(
	cache ports.ServicesCache,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) PurgeCacheCommandHandler {
	return decorator.ApplyCommandDecorators[PurgeCacheCommand, int64](
		purgeCacheCommandHandler{cache: cache},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h purgeCacheCommandHandler) Handle(ctx context.Context, _ PurgeCacheCommand) (int64, error) {
	if h.cache == nil {
		return 0, model.ErrCacheUnavailable
	}

	return h.cache.Purge(ctx)
}
