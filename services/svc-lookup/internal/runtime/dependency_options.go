package runtime

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	goruntime "runtime"
	"strconv"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics/noop"
	promclient "github.com/architeacher/imei-lookup/pkg/metrics/prometheus"
	inboundhttp "github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/outbound/dhru"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/repos"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/services"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure/postgres"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/hashicorp/vault/api"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithConfigValidation(),
		WithTracing(ctx),
		WithMetrics(),
		WithCache(ctx),
		WithDatabase(ctx),
		WithProvider(),
		WithLookupService(),
		WithHealthService(),
		WithApplication(),
		WithHTTPServer(),
		WithAdminHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = d.config.SecretsStorage.Address
		vaultConfig.Timeout = d.config.SecretsStorage.Timeout
		vaultConfig.MaxRetries = int(d.config.SecretsStorage.MaxRetries)

		if d.config.SecretsStorage.TLSSkipVerify {
			vaultConfig.HttpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		if d.config.SecretsStorage.Namespace != "" {
			client.SetNamespace(d.config.SecretsStorage.Namespace)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)

		return nil
	}
}

func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.repos.secretsRepo == nil {
			return nil
		}

		loader := config.NewLoader(d.config, d.repos.secretsRepo, 0)

		version, err := loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		d.infra.logger.Info().Uint("version", version).Msg("secrets loaded from Vault")
		d.configLoader = loader

		return nil
	}
}

// WithConfigValidation runs after the secrets overlay so required secrets
// such as the JWT key may come from Vault.
func WithConfigValidation() DependencyOption {
	return func(d *dependencies) error {
		if err := d.config.Validate(); err != nil {
			return fmt.Errorf("validating configuration: %w", err)
		}

		if d.config.Provider.APIKey == "" {
			d.infra.logger.Warn().Msg("provider api key is empty, provider calls will be rejected")
		}

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.cleanupFuncs["tracer_provider"] = shutdown

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Metrics.Enabled {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		client := promclient.NewClient(
			d.config.Telemetry.Metrics.Namespace,
			promclient.WithDescriptors(middleware.HTTPDescriptors),
			promclient.WithRuntimeCollectors(),
		)

		d.infra.metricsClient = client
		d.cleanupFuncs["metrics_client"] = client.Shutdown

		return nil
	}
}

// WithCache connects to KeyDB. An unreachable cache at startup is logged
// and tolerated; the repositories reconnect through the go-redis pool.
func WithCache(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Cache.Enabled {
			d.infra.logger.Info().Msg("cache disabled, rate limiting and idempotency are skipped")

			return nil
		}

		client := infrastructure.NewKeyDBClient(d.config.Cache, d.infra.logger)
		if !client.IsHealthy(ctx) {
			d.infra.logger.Warn().
				Str("address", d.config.Cache.Address).
				Msg("cache is not reachable yet, continuing degraded")
		}

		d.infra.cacheClient = client
		d.cleanupFuncs["cache_client"] = func(context.Context) error {
			return client.Close()
		}

		d.repos.rateLimitStore = repos.NewRateLimitStore(client, d.config.ThrottledRateLimiting.KeyPrefix)

		if d.config.Idempotency.Enabled {
			d.repos.idempotencyRepo = repos.NewIdempotencyRepository(client)
		}

		if d.config.LookupCache.Enabled {
			d.repos.servicesCache = repos.NewServicesCacheRepository(client, d.config.LookupCache.KeyPrefix)
		}

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Database.Enabled {
			d.infra.logger.Warn().Msg("database disabled, lookups will not be recorded")

			return nil
		}

		pool, err := postgres.NewPool(ctx, d.config.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.repos.recordsRepo = repos.NewRecordsRepository(pool, repos.NewPgxScanner(), d.infra.logger)
		d.cleanupFuncs["database_pool"] = func(context.Context) error {
			pool.Close()

			return nil
		}

		return nil
	}
}

func WithProvider() DependencyOption {
	return func(d *dependencies) error {
		client, err := dhru.NewClient(d.config.Provider, d.config.Backoff, d.infra.logger)
		if err != nil {
			return fmt.Errorf("creating provider client: %w", err)
		}

		d.services.provider = client

		if d.configLoader != nil {
			d.configLoader.OnReload(func(cfg *config.ServiceConfig) {
				client.SetAPIKey(cfg.Provider.APIKey)
			})
		}

		return nil
	}
}

func WithLookupService() DependencyOption {
	return func(d *dependencies) error {
		d.services.classifier = identifier.NewClassifier(
			identifier.WithSerialMinLength(d.config.Identifier.SerialMinLength),
		)

		d.services.lookup = services.NewLookupService(
			d.services.classifier,
			d.services.provider,
			d.repos.recordsRepo,
			d.infra.logger,
			services.WithDefaults(d.config.Provider.DefaultServiceID, d.config.Provider.DefaultFormat),
		)

		return nil
	}
}

func WithHealthService() DependencyOption {
	return func(d *dependencies) error {
		var dbPinger, cachePinger ports.Pinger

		if d.infra.dbPool != nil {
			dbPinger = d.infra.dbPool
		}

		if d.infra.cacheClient != nil {
			cachePinger = d.infra.cacheClient
		}

		d.services.healthChecker = services.NewHealthService(
			model.VersionInfo{
				API:    d.config.App.APIVersion,
				Build:  config.ServiceVersion,
				Commit: config.CommitSHA,
				Go:     goruntime.Version(),
			},
			services.WithDatabase(dbPinger),
			services.WithCache(cachePinger),
			services.WithProvider(d.services.provider),
		)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.apps.webApp = usecases.NewWebApplication(
			d.services.lookup,
			d.services.healthChecker,
			d.repos.servicesCache,
			decorator.CacheConfig{
				Enabled:      d.config.LookupCache.Enabled && d.repos.servicesCache != nil,
				TTL:          d.config.LookupCache.ServicesTTL,
				WriteTimeout: d.config.Cache.WriteTimeout,
			},
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:              d.apps.webApp,
			Logger:           d.infra.logger,
			MetricsClient:    d.infra.metricsClient,
			Config:           d.config,
			RateLimitStore:   d.repos.rateLimitStore,
			IdempotencyCache: d.repos.idempotencyRepo,
		})
		if err != nil {
			return fmt.Errorf("building public router: %w", err)
		}

		cfg := d.config.PublicHTTPServer
		server := &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}

		d.infra.publicHTTPServer = server

		return nil
	}
}

func WithAdminHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		cfg := d.config.AdminHTTPServer
		if !cfg.Enabled {
			return nil
		}

		server := &http.Server{
			Addr: net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			Handler: inboundhttp.NewAdminRouter(inboundhttp.AdminRouterConfig{
				App:           d.apps.webApp,
				MetricsClient: d.infra.metricsClient,
				ConfigSource:  d.currentConfig,
				Logger:        d.infra.logger,
			}),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}

		d.infra.adminHTTPServer = server

		return nil
	}
}
