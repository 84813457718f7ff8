package http

import (
	"fmt"
	"net/http"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/api"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/handlers/public"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const openAPIPath = "/v1/openapi.yaml"

type RouterConfig struct {
	App           *usecases.WebApplication
	Logger        logger.Logger
	MetricsClient metrics.Client
	Config        *config.ServiceConfig
	// RateLimitStore and IdempotencyCache are nil when the cache is down or
	// disabled; the matching middleware is then skipped.
	RateLimitStore   throttled.GCRAStoreCtx
	IdempotencyCache ports.IdempotencyCache
}

func NewRouter(cfg RouterConfig) (http.Handler, error) {
	router := chi.NewRouter()
	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.MethodNotAllowed)

	router.Use(middleware.RequestTracking())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.SecurityHeaders(cfg.Config.App.APIVersion))
	router.Use(middleware.CORS(cfg.Config.PublicHTTPServer.AllowedOrigins))

	if cfg.Config.Telemetry.Enabled && cfg.Config.Telemetry.Traces.Enabled {
		router.Use(otelhttp.NewMiddleware(cfg.Config.App.ServiceName))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		router.Use(middleware.HealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks))
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled && cfg.MetricsClient != nil {
		router.Use(middleware.Metrics(cfg.MetricsClient))
	}

	if cfg.Config.PublicHTTPServer.MaxBodyBytes > 0 {
		router.Use(chimiddleware.RequestSize(cfg.Config.PublicHTTPServer.MaxBodyBytes))
	}

	if cfg.Config.Auth.Enabled {
		router.Use(middleware.Authentication(cfg.Config.Auth, cfg.Logger))
		cfg.Logger.Info().Msg("authentication is enabled")
	}

	if cfg.Config.ThrottledRateLimiting.Enabled {
		if cfg.RateLimitStore == nil {
			cfg.Logger.Warn().Msg("rate limiting enabled but no store is available, skipping")
		} else {
			rateLimiter, err := middleware.ThrottledRateLimiting(cfg.Config.ThrottledRateLimiting, cfg.RateLimitStore, cfg.Logger)
			if err != nil {
				return nil, fmt.Errorf("configuring rate limiter: %w", err)
			}

			router.Use(rateLimiter)
		}
	}

	if cfg.Config.Compression.Enabled {
		router.Use(middleware.Compression(cfg.Config.Compression, cfg.MetricsClient))
	}

	doc, err := api.Load()
	if err != nil {
		return nil, err
	}

	validator, err := middleware.RequestValidator(doc, cfg.Logger)
	if err != nil {
		return nil, err
	}

	router.Use(validator)

	if cfg.Config.Idempotency.Enabled && cfg.IdempotencyCache != nil {
		router.Use(middleware.Idempotency(cfg.IdempotencyCache, cfg.Config.Idempotency, cfg.Logger))
	}

	router.Get(openAPIPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Raw())
	})

	public.NewLookupHandler(cfg.App, public.WithServicesMaxAge(cfg.Config.LookupCache.ServicesTTL)).Routes(router)

	return router, nil
}
