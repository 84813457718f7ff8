package public

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/handlers/shared"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/commands"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidRequestBody = "request body must be a JSON object"
	msgInvalidLimit       = "limit must be an integer"
	msgLimitOutOfRange    = "limit must be between 1 and 200"
)

type (
	queryDeviceRequest struct {
		Identifier string `json:"identifier"`
		ServiceID  string `json:"serviceId"`
		Format     string `json:"format"`
	}

	classifyRequest struct {
		Identifier string `json:"identifier"`
	}

	searchHistoryRequest struct {
		Term   string `json:"term"`
		Format string `json:"format"`
	}

	deviceHistoryData struct {
		Identifier string              `json:"identifier"`
		Limit      int                 `json:"limit"`
		Records    []model.QueryRecord `json:"records"`
	}

	LookupHandler struct {
		app            *usecases.WebApplication
		servicesMaxAge time.Duration
	}

	LookupHandlerOption func(*LookupHandler)
)

func NewLookupHandler(app *usecases.WebApplication, opts ...LookupHandlerOption) *LookupHandler {
	h := &LookupHandler{app: app}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// WithServicesMaxAge lets clients cache the service catalog for d.
func WithServicesMaxAge(d time.Duration) LookupHandlerOption {
	return func(h *LookupHandler) {
		h.servicesMaxAge = d
	}
}

// Routes mounts the public API on r.
func (h *LookupHandler) Routes(r chi.Router) {
	r.Post("/v1/devices/query", h.QueryDevice)
	r.Post("/v1/identifiers/classify", h.ClassifyIdentifier)
	r.Get("/v1/account/balance", h.GetBalance)
	r.Get("/v1/services", h.ListServices)
	r.Post("/v1/history/search", h.SearchHistory)
	r.Get("/v1/records/stats", h.GetRecordStats)
	r.Get("/v1/records/{identifier}/history", h.ListDeviceHistory)
	r.Get("/v1/health", h.HealthCheck)
	r.Get("/v1/liveness", h.LivenessCheck)
	r.Get("/v1/readiness", h.ReadinessCheck)
}

func (h *LookupHandler) QueryDevice(w http.ResponseWriter, r *http.Request) {
	var req queryDeviceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.app.Commands.QueryDevice.Handle(r.Context(), commands.QueryDeviceCommand{
		Input:     req.Identifier,
		ServiceID: req.ServiceID,
		Format:    req.Format,
		UserID:    middleware.GetSubject(r.Context()),
	})
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	shared.WriteData(w, r, http.StatusOK, result)
}

func (h *LookupHandler) ClassifyIdentifier(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.app.Queries.ClassifyIdentifier.Execute(r.Context(), queries.ClassifyIdentifierQuery{
		Input: req.Identifier,
	})
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	shared.WriteData(w, r, http.StatusOK, result)
}

func (h *LookupHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.GetBalance.Execute(r.Context(), queries.GetBalanceQuery{})
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	shared.WriteData(w, r, http.StatusOK, result)
}

func (h *LookupHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx := decorator.WithCacheStatusTracking(r.Context())

	result, err := h.app.Queries.ListServices.Execute(ctx, queries.ListServicesQuery{})
	shared.SetCacheStatus(w, decorator.GetCacheStatus(ctx))

	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	if h.servicesMaxAge > 0 {
		shared.SetCacheControl(w, h.servicesMaxAge)
	}

	if !result.FetchedAt.IsZero() {
		shared.SetLastModified(w, result.FetchedAt)
	}

	shared.WriteCacheableData(w, r, result)
}

func (h *LookupHandler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	var req searchHistoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.app.Queries.SearchHistory.Execute(r.Context(), queries.SearchHistoryQuery{
		Term:   req.Term,
		Format: req.Format,
	})
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	shared.WriteData(w, r, http.StatusOK, result)
}

func (h *LookupHandler) GetRecordStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.GetRecordStats.Execute(r.Context(), queries.GetRecordStatsQuery{})
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	shared.WriteData(w, r, http.StatusOK, result)
}

func (h *LookupHandler) ListDeviceHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := parseHistoryLimit(r.URL.Query().Get("limit"))
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	value := chi.URLParam(r, "identifier")

	records, err := h.app.Queries.ListDeviceHistory.Execute(r.Context(), queries.ListDeviceHistoryQuery{
		Identifier: value,
		Limit:      limit,
	})
	if err != nil {
		shared.WriteDomainError(w, err)

		return
	}

	if records == nil {
		records = []model.QueryRecord{}
	}

	shared.WriteData(w, r, http.StatusOK, deviceHistoryData{
		Identifier: value,
		Limit:      model.ClampHistoryLimit(limit),
		Records:    records,
	})
}

func (h *LookupHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		writeProbeFailure(w)

		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}

// ReadinessCheck answers 503 only when a critical dependency is down; a
// degraded service keeps receiving traffic.
func (h *LookupHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil {
		writeProbeFailure(w)

		return
	}

	shared.WriteJSON(w, probeStatus(result.Status), result)
}

func (h *LookupHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealth.Execute(r.Context(), queries.FetchHealthQuery{})
	if err != nil {
		writeProbeFailure(w)

		return
	}

	shared.WriteJSON(w, probeStatus(result.Status), result)
}

func probeStatus(status model.HealthStatus) int {
	if status == model.HealthStatusDown {
		return http.StatusServiceUnavailable
	}

	return http.StatusOK
}

func writeProbeFailure(w http.ResponseWriter) {
	shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
		"status":    model.HealthStatusDown,
		"timestamp": time.Now().UTC(),
	})
}

// parseHistoryLimit returns 0 for an absent limit so the default applies.
func parseHistoryLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		verr := &model.ValidationErrors{}
		verr.Add("limit", msgInvalidLimit, model.ValidationCodeInvalid)

		return 0, verr
	}

	if limit < 1 || limit > model.MaxHistoryLimit {
		verr := &model.ValidationErrors{}
		verr.Add("limit", msgLimitOutOfRange, model.ValidationCodeOutOfRange)

		return 0, verr
	}

	return limit, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.WriteError(w, http.StatusRequestEntityTooLarge, shared.CodeRequestTooLarge, "request body too large", nil)
		} else {
			shared.WriteError(w, http.StatusBadRequest, shared.CodeInvalidJSON, msgInvalidRequestBody, nil)
		}

		return false
	}

	return true
}
