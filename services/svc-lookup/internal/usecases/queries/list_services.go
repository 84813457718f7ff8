package queries

import (
	"context"
	"time"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListServicesQuery struct{}

	ListServicesQueryHandler = decorator.QueryHandler[ListServicesQuery, *model.ServiceCatalog]

	listServicesQueryHandler struct {
		lookupService ports.LookupService
	}

	// servicesCacheAdapter fits the catalog cache to the caching decorator.
	servicesCacheAdapter struct {
		cache ports.ServicesCache
	}
)

// NewListServicesQueryHandler caches the catalog when cache is non-nil and
// cacheConfig is enabled. The handler reports HIT, MISS or BYPASS through
// decorator.GetCacheStatus.
func NewListServicesQueryHandler(
	svc ports.LookupService,
	cache ports.ServicesCache,
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListServicesQueryHandler {
	var handler ListServicesQueryHandler = listServicesQueryHandler{lookupService: svc}

	var adapter decorator.Cache[ListServicesQuery, *model.ServiceCatalog]
	if cache != nil {
		adapter = servicesCacheAdapter{cache: cache}
	}

	handler = decorator.NewQueryCachingDecorator(handler, adapter, cacheConfig)

	return decorator.ApplyQueryDecorators(handler, log, metricsClient, tracerProvider)
}

func (h listServicesQueryHandler) Execute(ctx context.Context, _ ListServicesQuery) (*model.ServiceCatalog, error) {
	return h.lookupService.Services(ctx)
}

func (a servicesCacheAdapter) Get(ctx context.Context, _ ListServicesQuery) (*model.ServiceCatalog, bool, error) {
	return a.cache.GetServices(ctx)
}

func (a servicesCacheAdapter) Set(ctx context.Context, _ ListServicesQuery, catalog *model.ServiceCatalog, ttl time.Duration) error {
	return a.cache.SetServices(ctx, catalog, ttl)
}
