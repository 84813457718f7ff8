package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/handlers/shared"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/commands"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

type (
	purgeData struct {
		Removed  int64     `json:"removed"`
		PurgedAt time.Time `json:"purged_at"`
	}

	// ConfigSource returns the configuration currently in effect.
	ConfigSource func() *config.ServiceConfig

	// AdminHandler serves operator endpoints. They are only exposed on the
	// admin listener, never on the public API.
	AdminHandler struct {
		app            *usecases.WebApplication
		metricsHandler http.Handler
		configSource   ConfigSource
	}
)

func NewAdminHandler(app *usecases.WebApplication, metricsHandler http.Handler, configSource ConfigSource) *AdminHandler {
	return &AdminHandler{
		app:            app,
		metricsHandler: metricsHandler,
		configSource:   configSource,
	}
}

func (h *AdminHandler) Routes(r chi.Router) {
	r.Handle("/metrics", h.metricsHandler)
	r.Delete("/admin/cache", h.PurgeCache)
	r.Get("/admin/config", h.GetConfig)
	r.Get("/admin/health", h.HealthCheck)
}

// PurgeCache drops every cached provider response.
func (h *AdminHandler) PurgeCache(w http.ResponseWriter, r *http.Request) {
	removed, err := h.app.Commands.PurgeCache.Handle(r.Context(), commands.PurgeCacheCommand{})
	if err != nil {
		if errors.Is(err, model.ErrCacheUnavailable) {
			shared.WriteDomainError(w, err)

			return
		}

		shared.WriteError(w, http.StatusInternalServerError, shared.CodeInternalError, "failed to purge cache", nil)

		return
	}

	shared.WriteData(w, r, http.StatusOK, purgeData{
		Removed:  removed,
		PurgedAt: time.Now().UTC(),
	})
}

// GetConfig dumps the effective configuration with secrets masked.
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.configSource()
	if cfg == nil {
		shared.WriteError(w, http.StatusServiceUnavailable, shared.CodeInternalError, "configuration not loaded", nil)

		return
	}

	shared.WriteData(w, r, http.StatusOK, cfg.Redacted())
}

func (h *AdminHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealth.Execute(r.Context(), queries.FetchHealthQuery{})
	if err != nil {
		shared.WriteError(w, http.StatusServiceUnavailable, shared.CodeInternalError, "health report unavailable", nil)

		return
	}

	status := http.StatusOK
	if result.Status == model.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}

	shared.WriteJSON(w, status, result)
}
