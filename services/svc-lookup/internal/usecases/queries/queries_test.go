package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics/noop"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/mocks"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/usecases/queries"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

var (
	log = logger.NewTestLogger()
	mc  = noop.NewMetricsClient()
	tp  = otelNoop.NewTracerProvider()
)

func TestClassifyIdentifierQueryHandler(t *testing.T) {
	t.Parallel()

	svc := &mocks.FakeLookupService{}
	svc.ClassifyReturns(identifier.Identifier{Kind: identifier.KindSerial, Valid: true, Normalized: "F2LXK1ABHG7F"}, nil)

	handler := queries.NewClassifyIdentifierQueryHandler(svc, log, mc, tp)

	id, err := handler.Execute(t.Context(), queries.ClassifyIdentifierQuery{Input: "f2lx k1ab hg7f"})
	require.NoError(t, err)
	require.Equal(t, identifier.KindSerial, id.Kind)

	_, raw := svc.ClassifyArgsForCall(0)
	require.Equal(t, "f2lx k1ab hg7f", raw)
}

func TestGetBalanceQueryHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		balance     *model.Balance
		err         error
		expectedErr error
	}{
		{name: "balance", balance: &model.Balance{Amount: 12.5}},
		{name: "provider down", err: model.ErrProviderUnavailable, expectedErr: model.ErrProviderUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeLookupService{}
			svc.BalanceReturns(tc.balance, tc.err)

			result, err := queries.NewGetBalanceQueryHandler(svc, log, mc, tp).Execute(t.Context(), queries.GetBalanceQuery{})
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)

				return
			}

			require.NoError(t, err)
			require.InDelta(t, 12.5, result.Amount, 0.0001)
		})
	}
}

func TestListServicesQueryHandlerCaching(t *testing.T) {
	t.Parallel()

	catalog := &model.ServiceCatalog{Services: map[string]any{"30": "Apple Basic Info"}}
	enabled := decorator.CacheConfig{Enabled: true, TTL: time.Hour}

	cases := []struct {
		name             string
		setupCache       func() *mocks.FakeServicesCache
		cacheConfig      decorator.CacheConfig
		expectedStatus   decorator.CacheStatus
		expectedUpstream int
	}{
		{
			name: "hit skips the provider",
			setupCache: func() *mocks.FakeServicesCache {
				cache := &mocks.FakeServicesCache{}
				cache.GetServicesReturns(catalog, true, nil)

				return cache
			},
			cacheConfig:      enabled,
			expectedStatus:   decorator.CacheStatusHit,
			expectedUpstream: 0,
		},
		{
			name: "miss asks the provider",
			setupCache: func() *mocks.FakeServicesCache {
				return &mocks.FakeServicesCache{}
			},
			cacheConfig:      enabled,
			expectedStatus:   decorator.CacheStatusMiss,
			expectedUpstream: 1,
		},
		{
			name: "cache failure falls back to the provider",
			setupCache: func() *mocks.FakeServicesCache {
				cache := &mocks.FakeServicesCache{}
				cache.GetServicesReturns(nil, false, model.ErrCacheUnavailable)

				return cache
			},
			cacheConfig:      enabled,
			expectedStatus:   decorator.CacheStatusError,
			expectedUpstream: 1,
		},
		{
			name:             "no cache configured",
			setupCache:       func() *mocks.FakeServicesCache { return nil },
			cacheConfig:      enabled,
			expectedStatus:   decorator.CacheStatusBypass,
			expectedUpstream: 1,
		},
		{
			name: "caching disabled",
			setupCache: func() *mocks.FakeServicesCache {
				cache := &mocks.FakeServicesCache{}
				cache.GetServicesReturns(catalog, true, nil)

				return cache
			},
			expectedStatus:   decorator.CacheStatusBypass,
			expectedUpstream: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeLookupService{}
			svc.ServicesReturns(catalog, nil)

			cache := tc.setupCache()

			handler := queries.NewListServicesQueryHandler(svc, servicesCache(cache), tc.cacheConfig, log, mc, tp)

			ctx := decorator.WithCacheStatusTracking(t.Context())

			result, err := handler.Execute(ctx, queries.ListServicesQuery{})
			require.NoError(t, err)
			require.Equal(t, catalog, result)
			require.Equal(t, tc.expectedStatus, decorator.GetCacheStatus(ctx))
			require.Equal(t, tc.expectedUpstream, svc.ServicesCallCount())

			if tc.expectedStatus == decorator.CacheStatusMiss {
				require.Eventually(t, func() bool {
					return cache.SetServicesCallCount() == 1
				}, time.Second, 10*time.Millisecond)

				_, stored, ttl := cache.SetServicesArgsForCall(0)
				require.Equal(t, catalog, stored)
				require.Equal(t, time.Hour, ttl)
			}
		})
	}
}

func TestListServicesQueryHandlerDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	svc := &mocks.FakeLookupService{}
	svc.ServicesReturns(nil, model.ErrProviderUnavailable)

	cache := &mocks.FakeServicesCache{}

	handler := queries.NewListServicesQueryHandler(svc, cache, decorator.CacheConfig{Enabled: true, TTL: time.Hour}, log, mc, tp)

	_, err := handler.Execute(t.Context(), queries.ListServicesQuery{})
	require.ErrorIs(t, err, model.ErrProviderUnavailable)
	require.Never(t, func() bool { return cache.SetServicesCallCount() > 0 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestSearchHistoryQueryHandler(t *testing.T) {
	t.Parallel()

	svc := &mocks.FakeLookupService{}
	svc.SearchHistoryReturns(&model.HistorySearch{Term: "987654", Format: "json"}, nil)

	result, err := queries.NewSearchHistoryQueryHandler(svc, log, mc, tp).
		Execute(t.Context(), queries.SearchHistoryQuery{Term: "987654", Format: "json"})
	require.NoError(t, err)
	require.Equal(t, "987654", result.Term)

	_, term, format := svc.SearchHistoryArgsForCall(0)
	require.Equal(t, "987654", term)
	require.Equal(t, "json", format)
}

func TestRecordQueryHandlers(t *testing.T) {
	t.Parallel()

	t.Run("stats", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeLookupService{}
		svc.RecordStatsReturns(&model.RecordStats{TotalRecords: 9, TotalDevices: 4}, nil)

		stats, err := queries.NewGetRecordStatsQueryHandler(svc, log, mc, tp).Execute(t.Context(), queries.GetRecordStatsQuery{})
		require.NoError(t, err)
		require.EqualValues(t, 4, stats.TotalDevices)
	})

	t.Run("stats disabled", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeLookupService{}
		svc.RecordStatsReturns(nil, model.ErrPersistenceDisabled)

		_, err := queries.NewGetRecordStatsQueryHandler(svc, log, mc, tp).Execute(t.Context(), queries.GetRecordStatsQuery{})
		require.ErrorIs(t, err, model.ErrPersistenceDisabled)
	})

	t.Run("device history", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeLookupService{}
		svc.DeviceHistoryReturns([]model.QueryRecord{{Identifier: "490154203237518"}}, nil)

		records, err := queries.NewListDeviceHistoryQueryHandler(svc, log, mc, tp).
			Execute(t.Context(), queries.ListDeviceHistoryQuery{Identifier: "490154203237518", Limit: 5})
		require.NoError(t, err)
		require.Len(t, records, 1)

		_, id, limit := svc.DeviceHistoryArgsForCall(0)
		require.Equal(t, "490154203237518", id)
		require.Equal(t, 5, limit)
	})
}

func TestHealthQueryHandlers(t *testing.T) {
	t.Parallel()

	checker := &mocks.FakeHealthChecker{}
	checker.LivenessReturns(&model.LivenessReport{Status: model.HealthStatusOK}, nil)
	checker.ReadinessReturns(&model.ReadinessReport{Status: model.HealthStatusDegraded}, nil)
	checker.HealthReturns(nil, errors.New("health check aborted"))

	liveness, err := queries.NewFetchLivenessQueryHandler(checker, log, mc, tp).Execute(t.Context(), queries.FetchLivenessQuery{})
	require.NoError(t, err)
	require.Equal(t, model.HealthStatusOK, liveness.Status)

	readiness, err := queries.NewFetchReadinessQueryHandler(checker, log, mc, tp).Execute(t.Context(), queries.FetchReadinessQuery{})
	require.NoError(t, err)
	require.Equal(t, model.HealthStatusDegraded, readiness.Status)

	_, err = queries.NewFetchHealthQueryHandler(checker, log, mc, tp).Execute(context.Background(), queries.FetchHealthQuery{})
	require.EqualError(t, err, "health check aborted")
}

// servicesCache keeps a nil fake from becoming a non-nil interface.
func servicesCache(cache *mocks.FakeServicesCache) ports.ServicesCache {
	if cache == nil {
		return nil
	}

	return cache
}
