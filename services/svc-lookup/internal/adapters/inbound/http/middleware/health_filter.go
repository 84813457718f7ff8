package middleware

import (
	"context"
	"net/http"
	"strings"
)

type skipAccessLogKey struct{}

var healthEndpoints = map[string]struct{}{
	"/v1/health":    {},
	"/v1/liveness":  {},
	"/v1/readiness": {},
}

// HealthCheckFilter marks probe requests so the access logger skips them.
func HealthCheckFilter(logHealthChecks bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !logHealthChecks && IsHealthEndpoint(r.URL.Path) {
				r = r.WithContext(context.WithValue(r.Context(), skipAccessLogKey{}, true))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func IsHealthEndpoint(path string) bool {
	_, ok := healthEndpoints[strings.TrimSuffix(path, "/")]

	return ok
}

func shouldSkipAccessLog(ctx context.Context) bool {
	skip, ok := ctx.Value(skipAccessLogKey{}).(bool)

	return ok && skip
}
