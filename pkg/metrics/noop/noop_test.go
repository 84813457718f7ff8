package noop_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
)

var _ metrics.Client = noop.NewMetricsClient()

func TestHandlerReportsDisabledMetrics(t *testing.T) {
	t.Parallel()

	client := noop.NewMetricsClient()
	client.Inc(t.Context(), "lookups.total", 1)
	client.Observe(t.Context(), "dhru.request.duration", 0.2)

	rec := httptest.NewRecorder()
	client.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "metrics are disabled\n", rec.Body.String())
	require.NoError(t, client.Shutdown(t.Context()))
}
