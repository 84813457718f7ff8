package middleware

import (
	"net/http"
	"time"

	"github.com/architeacher/imei-lookup/pkg/logger"
)

// AccessLogger writes one line per request; 4xx log at warn and 5xx at error.
func AccessLogger(log logger.Logger, includeQueryParams bool) func(http.Handler) http.Handler {
	log = log.Component("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shouldSkipAccessLog(r.Context()) {
				next.ServeHTTP(w, r)

				return
			}

			start := time.Now()
			recorder := NewStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			reqLogger := log.WithContext(r.Context())

			event := reqLogger.Info()

			switch status := recorder.StatusCode(); {
			case status >= http.StatusInternalServerError:
				event = reqLogger.Error()
			case status >= http.StatusBadRequest:
				event = reqLogger.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Str("proto", r.Proto).
				Int("status", recorder.StatusCode()).
				Uint64("bytes", recorder.BytesWritten()).
				Int64("duration_ms", time.Since(start).Milliseconds())

			if includeQueryParams && r.URL.RawQuery != "" {
				event.Str("query", r.URL.RawQuery)
			}

			if referer := r.Referer(); referer != "" {
				event.Str("referer", referer)
			}

			event.Msg("request handled")
		})
	}
}
