//go:build integration

package itest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics/noop"
	inboundhttp "github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/outbound/dhru"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/repos"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/services"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases"
	"github.com/architeacher/imei-lookup/services/svc-lookup/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

const (
	postgresImage    = "postgres:18-alpine"
	postgresDatabase = "lookup_test"
	postgresUsername = "test"
	postgresPassword = "test"

	providerAPIKey = "itest-key"

	// KnownIMEI is answered by the fake provider with a full device record.
	KnownIMEI = "356789012345672"
	// UnknownIMEI makes the fake provider refuse the order.
	UnknownIMEI = "490154203237518"
)

// FakeProvider emulates the DHRU endpoints of sickw.com.
type FakeProvider struct {
	Server  *httptest.Server
	Queries atomic.Int32
	Calls   atomic.Int32
}

func NewFakeProvider() *FakeProvider {
	p := &FakeProvider{}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))

	return p
}

func (p *FakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	p.Calls.Add(1)

	params := r.URL.Query()
	if params.Get("key") != providerAPIKey {
		fmt.Fprint(w, `{"status":"error","result":"Invalid API Key"}`)

		return
	}

	switch params.Get("action") {
	case "balance":
		fmt.Fprint(w, "41.20")
	case "services":
		fmt.Fprint(w, `{"status":"success","services":[{"service":"30","name":"APPLE BASIC INFO","price":"0.08"}]}`)
	case "history":
		fmt.Fprintf(w, `{"status":"success","result":[{"Order ID":"987654","IMEI":%q}]}`, params.Get("imei"))
	default:
		p.Queries.Add(1)

		if params.Get("imei") == UnknownIMEI {
			fmt.Fprint(w, `{"status":"error","result":"No record found"}`)

			return
		}

		fmt.Fprintf(w, `{
			"status": "success",
			"result": {
				"Model Description": "IPHONE 13 PRO",
				"IMEI": %q,
				"Serial Number": "F2LXK0ABCDEF",
				"Warranty Status": "Out Of Warranty",
				"iCloud Lock": "OFF"
			},
			"balance": "41.12",
			"price": 0.08,
			"id": 987654
		}`, params.Get("imei"))
	}
}

func (p *FakeProvider) Close() {
	p.Server.Close()
}

// IntegrationTestServer runs the public router against PostgreSQL in a
// container, an in-memory KeyDB and the fake provider.
type IntegrationTestServer struct {
	HTTPServer *httptest.Server
	Provider   *FakeProvider
	Cache      *miniredis.Miniredis
	DBPool     *pgxpool.Pool
	Records    *repos.RecordsRepository
	Container  *postgres.PostgresContainer

	cacheClient   *infrastructure.KeydbClient
	containerCtx  context.Context
	containerStop context.CancelFunc
}

func NewIntegrationTestServer(ctx context.Context) (*IntegrationTestServer, error) {
	s := &IntegrationTestServer{}
	s.containerCtx, s.containerStop = context.WithTimeout(ctx, 5*time.Minute)

	container, err := postgres.Run(s.containerCtx,
		postgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUsername),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		s.Close()

		return nil, fmt.Errorf("starting postgres container: %w", err)
	}

	s.Container = container

	connStr, err := container.ConnectionString(s.containerCtx, "sslmode=disable")
	if err != nil {
		s.Close()

		return nil, fmt.Errorf("getting connection string: %w", err)
	}

	pool, err := pgxpool.New(s.containerCtx, connStr)
	if err != nil {
		s.Close()

		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	s.DBPool = pool

	if err := runMigrations(s.containerCtx, pool); err != nil {
		s.Close()

		return nil, fmt.Errorf("running migrations: %w", err)
	}

	cache, err := miniredis.Run()
	if err != nil {
		s.Close()

		return nil, fmt.Errorf("starting in-memory cache: %w", err)
	}

	s.Cache = cache
	s.Provider = NewFakeProvider()

	handler, err := s.buildRouter()
	if err != nil {
		s.Close()

		return nil, err
	}

	s.HTTPServer = httptest.NewServer(handler)

	return s, nil
}

func (s *IntegrationTestServer) buildRouter() (http.Handler, error) {
	log := logger.NewTestLogger()
	metricsClient := noop.NewMetricsClient()
	cfg := testConfig(s.Provider.Server.URL)

	s.cacheClient = infrastructure.NewKeyDBClient(config.Cache{Address: s.Cache.Addr()}, log)
	s.Records = repos.NewRecordsRepository(s.DBPool, repos.NewPgxScanner(), log)

	provider, err := dhru.NewClient(cfg.Provider, cfg.Backoff, log)
	if err != nil {
		return nil, fmt.Errorf("creating provider client: %w", err)
	}

	lookup := services.NewLookupService(identifier.NewClassifier(), provider, s.Records, log)
	health := services.NewHealthService(
		model.VersionInfo{API: "v1"},
		services.WithDatabase(s.DBPool),
		services.WithCache(s.cacheClient),
		services.WithProvider(provider),
	)

	servicesCache := repos.NewServicesCacheRepository(s.cacheClient, cfg.LookupCache.KeyPrefix)

	app := usecases.NewWebApplication(
		lookup,
		health,
		servicesCache,
		decorator.CacheConfig{Enabled: true, TTL: cfg.LookupCache.ServicesTTL, WriteTimeout: time.Second},
		log,
		metricsClient,
		otelNoop.NewTracerProvider(),
	)

	return inboundhttp.NewRouter(inboundhttp.RouterConfig{
		App:              app,
		Logger:           log,
		MetricsClient:    metricsClient,
		Config:           cfg,
		RateLimitStore:   repos.NewRateLimitStore(s.cacheClient, cfg.ThrottledRateLimiting.KeyPrefix),
		IdempotencyCache: repos.NewIdempotencyRepository(s.cacheClient),
	})
}

func testConfig(providerURL string) *config.ServiceConfig {
	cfg := &config.ServiceConfig{}
	cfg.App.ServiceName = "svc-lookup-itest"
	cfg.App.APIVersion = "v1"
	cfg.PublicHTTPServer.MaxBodyBytes = 1 << 16
	cfg.PublicHTTPServer.AllowedOrigins = []string{"*"}
	cfg.Provider = config.Provider{
		BaseURL:          providerURL,
		APIKey:           providerAPIKey,
		DefaultServiceID: model.DefaultServiceID,
		DefaultFormat:    model.DefaultFormat,
		QueryTimeout:     5 * time.Second,
		BalanceTimeout:   5 * time.Second,
		ServicesTimeout:  5 * time.Second,
		HistoryTimeout:   5 * time.Second,
		MaxRetries:       1,
	}
	cfg.Backoff = config.Backoff{BaseDelay: 10 * time.Millisecond, Multiplier: 1.5, MaxDelay: 50 * time.Millisecond}
	cfg.LookupCache = config.LookupCache{Enabled: true, ServicesTTL: time.Hour, KeyPrefix: "lookup"}
	cfg.ThrottledRateLimiting = config.ThrottledRateLimiting{
		Enabled:           true,
		RequestsPerMinute: 6000,
		BurstSize:         500,
		KeyPrefix:         "ratelimit",
		GracefulDegraded:  true,
	}
	cfg.Idempotency = config.Idempotency{
		Enabled:          true,
		CacheTTL:         time.Hour,
		LockTTL:          time.Minute,
		ReplayedHeader:   "Idempotent-Replayed",
		GracefulDegraded: true,
	}

	return cfg
}

// Truncate empties both tables and the cache between tests.
func (s *IntegrationTestServer) Truncate(ctx context.Context) error {
	s.Cache.FlushAll()

	_, err := s.DBPool.Exec(ctx, "TRUNCATE TABLE query_history, devices")

	return err
}

func (s *IntegrationTestServer) URL(path string) string {
	return s.HTTPServer.URL + path
}

func (s *IntegrationTestServer) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(path), nil)
	if err != nil {
		return nil, err
	}

	return s.HTTPServer.Client().Do(req)
}

// Post sends body as JSON; headers are applied in key, value pairs.
func (s *IntegrationTestServer) Post(ctx context.Context, path string, body any, headers ...string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL(path), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	return s.HTTPServer.Client().Do(req)
}

func (s *IntegrationTestServer) Close() {
	if s.HTTPServer != nil {
		s.HTTPServer.Close()
	}

	if s.Provider != nil {
		s.Provider.Close()
	}

	if s.cacheClient != nil {
		_ = s.cacheClient.Close()
	}

	if s.Cache != nil {
		s.Cache.Close()
	}

	if s.DBPool != nil {
		s.DBPool.Close()
	}

	if s.Container != nil {
		_ = s.Container.Terminate(s.containerCtx)
	}

	if s.containerStop != nil {
		s.containerStop()
	}
}

// HistoryPath escapes value for use as a path segment.
func HistoryPath(value string) string {
	return "/v1/records/" + url.PathEscape(value) + "/history"
}

func DecodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// DecodeData unwraps the data member of an enveloped response.
func DecodeData(resp *http.Response, v any) error {
	defer resp.Body.Close()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	if err := DecodeJSON(resp.Body, &envelope); err != nil {
		return err
	}

	return json.Unmarshal(envelope.Data, v)
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	var files []string

	err := fs.WalkDir(migrations.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".up.sql") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return err
	}

	sort.Strings(files)

	for _, file := range files {
		content, err := migrations.FS.ReadFile(file)
		if err != nil {
			return err
		}

		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", file, err)
		}
	}

	return nil
}
