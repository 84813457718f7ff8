package http

import (
	"net/http"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/handlers/admin"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type AdminRouterConfig struct {
	App           *usecases.WebApplication
	MetricsClient metrics.Client
	ConfigSource  admin.ConfigSource
	Logger        logger.Logger
}

// NewAdminRouter serves metrics and operator endpoints. It is meant for an
// internal listener only.
func NewAdminRouter(cfg AdminRouterConfig) http.Handler {
	router := chi.NewRouter()
	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.MethodNotAllowed)

	router.Use(middleware.RequestTracking())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))

	admin.NewAdminHandler(cfg.App, cfg.MetricsClient.Handler(), cfg.ConfigSource).Routes(router)

	return router
}
