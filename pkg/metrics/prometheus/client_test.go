package prometheus_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/imei-lookup/pkg/metrics"
	promclient "github.com/architeacher/imei-lookup/pkg/metrics/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestClientInc(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := promclient.NewClient("imei_lookup")

	client.Inc(ctx, "queries.classify.success", 1, attribute.String("kind", "imei"))
	client.Inc(ctx, "queries.classify.success", int64(2), attribute.String("kind", "imei"))
	client.Inc(ctx, "queries.classify.success", 1, attribute.String("kind", "serial"))

	families, err := client.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "imei_lookup_queries_classify_success_total", families[0].GetName())
	require.Len(t, families[0].GetMetric(), 2)

	var total float64
	for _, m := range families[0].GetMetric() {
		total += m.GetCounter().GetValue()
	}

	require.InDelta(t, 4, total, 0.0001)
}

func TestClientObserve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := promclient.NewClient("imei_lookup", promclient.WithDescriptors(map[string]metrics.Descriptor{
		"dhru.request.duration": {Description: "Latency of provider calls"},
	}))

	client.Observe(ctx, "dhru.request.duration", 0.25, attribute.String("action", "query"))

	recorder := httptest.NewRecorder()
	client.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "imei_lookup_dhru_request_duration_seconds_count")
	require.Contains(t, string(body), "Latency of provider calls")
	require.Contains(t, string(body), `action="query"`)
}

func TestClientIgnoresNegativeIncrements(t *testing.T) {
	t.Parallel()

	client := promclient.NewClient("")
	client.Inc(context.Background(), "errors", -1)

	families, err := client.Registry().Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		namespace string
		key       string
		expected  string
	}{
		{name: "dotted key", namespace: "svc", key: "queries.balance.failure", expected: "svc_queries_balance_failure"},
		{name: "no namespace", key: "http-requests", expected: "http_requests"},
		{name: "upper case", namespace: "App", key: "Cache.HIT", expected: "app_cache_hit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, metrics.SanitizeName(tc.namespace, tc.key))
		})
	}
}
