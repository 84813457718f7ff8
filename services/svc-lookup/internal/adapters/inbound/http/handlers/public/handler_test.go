package public_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics/noop"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/handlers/public"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/outbound/dhru"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/mocks"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	noopTrace "go.opentelemetry.io/otel/trace/noop"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc    *mocks.FakeLookupService
	health *mocks.FakeHealthChecker
	cache  *mocks.FakeServicesCache
	router chi.Router
}

func newFixture(t *testing.T, withCache bool) *fixture {
	t.Helper()

	f := &fixture{
		svc:    &mocks.FakeLookupService{},
		health: &mocks.FakeHealthChecker{},
	}

	var cache ports.ServicesCache

	cacheConfig := decorator.CacheConfig{}

	if withCache {
		f.cache = &mocks.FakeServicesCache{}
		cache = f.cache
		cacheConfig = decorator.CacheConfig{Enabled: true, TTL: time.Hour, WriteTimeout: time.Second}
	}

	app := usecases.NewWebApplication(
		f.svc, f.health, cache, cacheConfig,
		logger.NewTestLogger(), noop.NewMetricsClient(), noopTrace.NewTracerProvider(),
	)

	f.router = chi.NewRouter()
	public.NewLookupHandler(app, public.WithServicesMaxAge(5*time.Minute)).Routes(f.router)

	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		RequestID  string `json:"requestId"`
		APIVersion string `json:"apiVersion"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, dst any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "v1", env.Meta.APIVersion)

	if dst != nil {
		require.NoError(t, json.Unmarshal(env.Data, dst))
	}

	return env
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Code
}

func TestQueryDevice(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)

	total := int64(3)
	f.svc.QueryDeviceReturns(&model.LookupResult{
		Identifier: identifier.Identifier{
			Raw: "490154203237518", Kind: identifier.KindIMEI, Valid: true,
			Normalized: "490154203237518", Reason: identifier.ReasonValid,
		},
		ServiceID:    "30",
		Device:       map[string]any{"Model_Description": "iPhone 13"},
		OrderID:      "A-991",
		Persisted:    true,
		TotalRecords: &total,
		QueriedAt:    fixedNow,
	}, nil)

	req := jsonRequest(http.MethodPost, "/v1/devices/query", `{"identifier":"490154203237518","serviceId":"31","format":"json"}`)
	req = req.WithContext(middleware.WithClaims(req.Context(), &model.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "operator-1"},
	}))

	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.LookupResult
	decodeEnvelope(t, rec, &result)
	require.Equal(t, "A-991", result.OrderID)
	require.True(t, result.Persisted)
	require.Equal(t, int64(3), *result.TotalRecords)

	require.Equal(t, 1, f.svc.QueryDeviceCallCount())
	_, sent := f.svc.QueryDeviceArgsForCall(0)
	require.Equal(t, ports.QueryDeviceRequest{
		Input:     "490154203237518",
		ServiceID: "31",
		Format:    "json",
		UserID:    "operator-1",
	}, sent)
}

func TestQueryDeviceErrors(t *testing.T) {
	t.Parallel()

	invalid := &model.ValidationErrors{Details: identifier.Identifier{Raw: "123", Kind: identifier.KindIMEI, Reason: identifier.ReasonIMEILength}}
	invalid.Add("identifier", "IMEI must have 15 digits", model.ValidationCodeInvalid)

	cases := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
		wantCalls  int
	}{
		{name: "malformed json", body: `{"identifier":`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_JSON"},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest, wantCode: "INVALID_JSON"},
		{name: "unknown field", body: `{"imei":"1"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_JSON"},
		{name: "invalid identifier", body: `{"identifier":"123"}`, err: invalid, wantStatus: http.StatusBadRequest, wantCode: "INVALID_IDENTIFIER", wantCalls: 1},
		{
			name:       "provider outage",
			body:       `{"identifier":"490154203237518"}`,
			err:        &dhru.ProviderError{Category: dhru.CategoryProviderOutage, Operation: "query", Message: "circuit open"},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "PROVIDER_UNAVAILABLE",
			wantCalls:  1,
		},
		{
			name:       "provider rejects",
			body:       `{"identifier":"490154203237518"}`,
			err:        &dhru.ProviderError{Category: dhru.CategoryBadData, Operation: "query", Message: "Invalid service"},
			wantStatus: http.StatusBadGateway,
			wantCode:   "PROVIDER_BAD_DATA",
			wantCalls:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, false)
			f.svc.QueryDeviceReturns(nil, tc.err)

			rec := f.do(jsonRequest(http.MethodPost, "/v1/devices/query", tc.body))

			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, tc.wantCode, errorCode(t, rec))
			require.Equal(t, tc.wantCalls, f.svc.QueryDeviceCallCount())
		})
	}
}

func TestQueryDeviceRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)

	body := `{"identifier":"` + strings.Repeat("4", 512) + `"}`
	req := jsonRequest(http.MethodPost, "/v1/devices/query", body)
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 64)

	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, "REQUEST_TOO_LARGE", errorCode(t, rec))
	require.Zero(t, f.svc.QueryDeviceCallCount())
}

func TestClassifyIdentifier(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.svc.ClassifyReturns(identifier.Identifier{
		Raw: "490154203237519", Kind: identifier.KindIMEI, Normalized: "490154203237519",
		Reason: identifier.ReasonIMEIChecksum,
	}, nil)

	rec := f.do(jsonRequest(http.MethodPost, "/v1/identifiers/classify", `{"identifier":"490154203237519"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var id identifier.Identifier
	decodeEnvelope(t, rec, &id)
	require.False(t, id.Valid)
	require.Equal(t, identifier.ReasonIMEIChecksum, id.Reason)

	_, raw := f.svc.ClassifyArgsForCall(0)
	require.Equal(t, "490154203237519", raw)
}

func TestGetBalance(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.svc.BalanceReturns(&model.Balance{Amount: 42.5, CheckedAt: fixedNow}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/account/balance", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var balance model.Balance
	decodeEnvelope(t, rec, &balance)
	require.InDelta(t, 42.5, balance.Amount, 0.001)
}

func TestListServicesCaching(t *testing.T) {
	t.Parallel()

	catalog := &model.ServiceCatalog{Services: map[string]any{"30": "iPhone Carrier"}, FetchedAt: fixedNow}

	f := newFixture(t, true)
	f.cache.GetServicesReturns(catalog, true, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/services", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "HIT", rec.Header().Get("Cache-Status"))
	require.Equal(t, "private, max-age=300", rec.Header().Get("Cache-Control"))
	require.Equal(t, "Sat, 14 Mar 2026 09:30:00 GMT", rec.Header().Get("Last-Modified"))
	require.Zero(t, f.svc.ServicesCallCount())

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	req.Header.Set("If-None-Match", etag)

	rec = f.do(req)
	require.Equal(t, http.StatusNotModified, rec.Code)
	require.Empty(t, rec.Body.Bytes())
}

func TestListServicesWithoutCache(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.svc.ServicesReturns(&model.ServiceCatalog{Services: []any{"30"}, FetchedAt: fixedNow}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/services", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "BYPASS", rec.Header().Get("Cache-Status"))
	require.Equal(t, 1, f.svc.ServicesCallCount())
}

func TestSearchHistory(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.svc.SearchHistoryReturns(&model.HistorySearch{Term: "490154203237518", Format: "beta", Data: []any{}}, nil)

	rec := f.do(jsonRequest(http.MethodPost, "/v1/history/search", `{"term":"490154203237518"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	_, term, format := f.svc.SearchHistoryArgsForCall(0)
	require.Equal(t, "490154203237518", term)
	require.Empty(t, format)
}

func TestGetRecordStats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		stats      *model.RecordStats
		err        error
		wantStatus int
	}{
		{name: "stats", stats: &model.RecordStats{TotalRecords: 10, TotalDevices: 4, LastQueryAt: &fixedNow}, wantStatus: http.StatusOK},
		{name: "persistence disabled", err: model.ErrPersistenceDisabled, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, false)
			f.svc.RecordStatsReturns(tc.stats, tc.err)

			rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/records/stats", nil))
			require.Equal(t, tc.wantStatus, rec.Code)

			if tc.stats != nil {
				var stats model.RecordStats
				decodeEnvelope(t, rec, &stats)
				require.Equal(t, int64(10), stats.TotalRecords)
				require.Equal(t, int64(4), stats.TotalDevices)
			}
		})
	}
}

func TestListDeviceHistory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		path          string
		wantStatus    int
		wantLimit     int
		wantCalls     int
		wantFieldCode string
	}{
		{name: "default limit", path: "/v1/records/490154203237518/history", wantStatus: http.StatusOK, wantLimit: 0, wantCalls: 1},
		{name: "explicit limit", path: "/v1/records/490154203237518/history?limit=5", wantStatus: http.StatusOK, wantLimit: 5, wantCalls: 1},
		{name: "maximum limit", path: "/v1/records/490154203237518/history?limit=200", wantStatus: http.StatusOK, wantLimit: 200, wantCalls: 1},
		{name: "bad limit", path: "/v1/records/490154203237518/history?limit=abc", wantStatus: http.StatusBadRequest, wantFieldCode: model.ValidationCodeInvalid},
		{name: "zero limit", path: "/v1/records/490154203237518/history?limit=0", wantStatus: http.StatusBadRequest, wantFieldCode: model.ValidationCodeOutOfRange},
		{name: "limit above maximum", path: "/v1/records/490154203237518/history?limit=201", wantStatus: http.StatusBadRequest, wantFieldCode: model.ValidationCodeOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, false)
			f.svc.DeviceHistoryReturns([]model.QueryRecord{{
				ID:         uuid.New(),
				Identifier: "490154203237518",
				Kind:       identifier.KindIMEI,
				ServiceID:  "30",
				CreatedAt:  fixedNow,
			}}, nil)

			rec := f.do(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, tc.wantCalls, f.svc.DeviceHistoryCallCount())

			if tc.wantCalls == 0 {
				var body struct {
					Code    string `json:"code"`
					Details struct {
						Errors []model.ValidationError `json:"errors"`
					} `json:"details"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Equal(t, "VALIDATION_FAILED", body.Code)
				require.Len(t, body.Details.Errors, 1)
				require.Equal(t, "limit", body.Details.Errors[0].Field)
				require.Equal(t, tc.wantFieldCode, body.Details.Errors[0].Code)

				return
			}

			_, value, limit := f.svc.DeviceHistoryArgsForCall(0)
			require.Equal(t, "490154203237518", value)
			require.Equal(t, tc.wantLimit, limit)

			var data struct {
				Identifier string              `json:"identifier"`
				Records    []model.QueryRecord `json:"records"`
			}
			decodeEnvelope(t, rec, &data)
			require.Len(t, data.Records, 1)
		})
	}
}

func TestListDeviceHistoryEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/v1/records/F2LXK1ABHG7F/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"records":[]`)
}

func TestProbes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		path       string
		setup      func(*mocks.FakeHealthChecker)
		wantStatus int
	}{
		{
			name: "liveness",
			path: "/v1/liveness",
			setup: func(h *mocks.FakeHealthChecker) {
				h.LivenessReturns(&model.LivenessReport{Status: model.HealthStatusOK, Timestamp: fixedNow}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "readiness degraded stays in rotation",
			path: "/v1/readiness",
			setup: func(h *mocks.FakeHealthChecker) {
				h.ReadinessReturns(&model.ReadinessReport{Status: model.HealthStatusDegraded}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "readiness down",
			path: "/v1/readiness",
			setup: func(h *mocks.FakeHealthChecker) {
				h.ReadinessReturns(&model.ReadinessReport{Status: model.HealthStatusDown}, nil)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "readiness error",
			path: "/v1/readiness",
			setup: func(h *mocks.FakeHealthChecker) {
				h.ReadinessReturns(nil, context.DeadlineExceeded)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "health ok",
			path: "/v1/health",
			setup: func(h *mocks.FakeHealthChecker) {
				h.HealthReturns(&model.HealthReport{Status: model.HealthStatusOK}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, false)
			tc.setup(f.health)

			rec := f.do(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Contains(t, body, "status")
		})
	}
}
