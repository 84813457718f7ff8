package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/outbound/dhru"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		publicHTTPServer *http.Server
		adminHTTPServer  *http.Server
		cacheClient      *infrastructure.KeydbClient
		dbPool           *pgxpool.Pool
		logger           logger.Logger
		metricsClient    metrics.Client
		tracerProvider   otelTrace.TracerProvider
	}

	// repositories holds interface values so a disabled backend stays a true
	// nil rather than a typed nil pointer.
	repositories struct {
		secretsRepo     ports.SecretsRepository
		recordsRepo     ports.RecordsRepository
		idempotencyRepo ports.IdempotencyCache
		servicesCache   ports.ServicesCache
		rateLimitStore  throttled.GCRAStoreCtx
	}

	servicesDep struct {
		classifier    *identifier.Classifier
		provider      *dhru.Client
		lookup        ports.LookupService
		healthChecker ports.HealthChecker
	}

	applications struct {
		webApp *usecases.WebApplication
	}

	dependencies struct {
		config       *config.ServiceConfig
		configLoader *config.Loader

		infra infrastructureDep

		repos repositories

		services servicesDep

		apps applications

		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

// currentConfig backs the admin config endpoint.
func (d *dependencies) currentConfig() *config.ServiceConfig {
	return d.config
}
