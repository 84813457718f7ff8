// Package noop provides a metrics client that records nothing, used when
// metrics are disabled and in tests.
package noop

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
)

const disabledMessage = "metrics are disabled\n"

type MetricsClient struct{}

func NewMetricsClient() MetricsClient {
	return MetricsClient{}
}

func (MetricsClient) Inc(context.Context, string, any, ...attribute.KeyValue) {}

func (MetricsClient) Observe(context.Context, string, float64, ...attribute.KeyValue) {}

// Handler answers scrapes with 404 so a misconfigured scraper shows up as
// a failing target instead of an empty one.
func (MetricsClient) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(disabledMessage))
	})
}

func (MetricsClient) Shutdown(context.Context) error {
	return nil
}
