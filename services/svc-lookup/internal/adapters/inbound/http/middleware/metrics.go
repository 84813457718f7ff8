package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http_method"
	httpRouteKey      = "http_route"
	httpStatusCodeKey = "http_status_code"

	httpRequestTotal    = "http_requests_total"
	httpRequestDuration = "http_request_duration_seconds"
	httpResponseSize    = "http_response_size_bytes"

	unmatchedRoute = "unmatched"
)

var HTTPDescriptors = map[string]metrics.Descriptor{
	httpRequestTotal:    {Description: "HTTP requests served."},
	httpRequestDuration: {Description: "HTTP request latency.", Unit: "seconds"},
	httpResponseSize:    {Description: "HTTP response body size.", Unit: "bytes"},
}

// Metrics labels requests by chi route pattern rather than raw path, so
// identifiers in URLs never become label values.
func Metrics(client metrics.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := NewStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			attrs := []attribute.KeyValue{
				attribute.String(httpMethodKey, r.Method),
				attribute.String(httpRouteKey, route),
				attribute.String(httpStatusCodeKey, strconv.Itoa(recorder.StatusCode())),
			}

			client.Inc(r.Context(), httpRequestTotal, 1, attrs...)
			client.Observe(r.Context(), httpRequestDuration, time.Since(start).Seconds(), attrs...)
			client.Observe(r.Context(), httpResponseSize, float64(recorder.BytesWritten()), attrs...)
		})
	}
}
