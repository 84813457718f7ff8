package usecases

import (
	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/commands"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/queries"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		QueryDevice commands.QueryDeviceCommandHandler
		PurgeCache  commands.PurgeCacheCommandHandler
	}

	Queries struct {
		ClassifyIdentifier queries.ClassifyIdentifierQueryHandler
		GetBalance         queries.GetBalanceQueryHandler
		ListServices       queries.ListServicesQueryHandler
		SearchHistory      queries.SearchHistoryQueryHandler
		GetRecordStats     queries.GetRecordStatsQueryHandler
		ListDeviceHistory  queries.ListDeviceHistoryQueryHandler
		FetchLiveness      queries.FetchLivenessQueryHandler
		FetchReadiness     queries.FetchReadinessQueryHandler
		FetchHealth        queries.FetchHealthQueryHandler
	}

	WebApplication struct {
		Commands Commands
		Queries  Queries
	}
)

// NewWebApplication wires every handler. servicesCache may be nil when the
// lookup cache is disabled.
func NewWebApplication(
	lookupSvc ports.LookupService,
	healthChecker ports.HealthChecker,
	servicesCache ports.ServicesCache,
	servicesCacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *WebApplication {
	return &WebApplication{
		Commands: Commands{
			QueryDevice: commands.NewQueryDeviceCommandHandler(lookupSvc, log, metricsClient, tracerProvider),
			PurgeCache:  commands.NewPurgeCacheCommandHandler(servicesCache, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			ClassifyIdentifier: queries.NewClassifyIdentifierQueryHandler(lookupSvc, log, metricsClient, tracerProvider),
			GetBalance:         queries.NewGetBalanceQueryHandler(lookupSvc, log, metricsClient, tracerProvider),
			ListServices: queries.NewListServicesQueryHandler(
				lookupSvc, servicesCache, servicesCacheConfig, log, metricsClient, tracerProvider,
			),
			SearchHistory:     queries.NewSearchHistoryQueryHandler(lookupSvc, log, metricsClient, tracerProvider),
			GetRecordStats:    queries.NewGetRecordStatsQueryHandler(lookupSvc, log, metricsClient, tracerProvider),
			ListDeviceHistory: queries.NewListDeviceHistoryQueryHandler(lookupSvc, log, metricsClient, tracerProvider),
			FetchLiveness:     queries.NewFetchLivenessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchReadiness:    queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchHealth:       queries.NewFetchHealthQueryHandler(healthChecker, log, metricsClient, tracerProvider),
		},
	}
}
