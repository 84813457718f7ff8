package middleware

import (
	"context"
	"net/http"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/google/uuid"
)

const (
	RequestIDHeader     = "Request-Id"
	CorrelationIDHeader = "Correlation-Id"
)

// RequestTracking propagates or mints request and correlation IDs. They are
// stored under the logger's context keys so every log line carries them.
func RequestTracking() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			correlationID := r.Header.Get(CorrelationIDHeader)
			if correlationID == "" {
				correlationID = requestID
			}

			ctx := context.WithValue(r.Context(), logger.ContextKeyRequestID, requestID)
			ctx = context.WithValue(ctx, logger.ContextKeyCorrelationID, correlationID)

			w.Header().Set(RequestIDHeader, requestID)
			w.Header().Set(CorrelationIDHeader, correlationID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(logger.ContextKeyRequestID).(string)

	return id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(logger.ContextKeyCorrelationID).(string)

	return id
}
