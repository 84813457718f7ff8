package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/architeacher/imei-lookup/pkg/idempotency"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
)

// Idempotency replays the stored response for a POST carrying a known
// Idempotency-Key, so a client retrying a billed lookup is not charged twice.
// Keys are scoped to the caller and route. Reusing a key with a different
// body is rejected with 422.
func Idempotency(
	cache ports.IdempotencyCache,
	cfg config.Idempotency,
	log logger.Logger,
) func(http.Handler) http.Handler {
	log = log.Component("idempotency")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(idempotency.HeaderName)
			if !cfg.Enabled || cache == nil || r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)

				return
			}

			if err := idempotency.Validate(key); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidIdempotencyKey, err.Error())

				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusRequestEntityTooLarge, codeRequestTooLarge, "request body could not be read")

				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			fingerprint := idempotency.Fingerprint(body)

			ctx := r.Context()
			reqLog := log.WithContext(ctx)
			cacheKey := idempotency.BuildCacheKey(r.Method, r.URL.Path, GetSubject(ctx), key)

			degrade := func(err error, msg string) {
				reqLog.Warn().Err(err).Msg(msg)

				if cfg.GracefulDegraded {
					next.ServeHTTP(w, r)

					return
				}

				writeError(w, http.StatusServiceUnavailable, codeCacheUnavailable,
					"idempotency service temporarily unavailable")
			}

			stored, err := cache.Get(ctx, cacheKey)
			if err != nil {
				degrade(err, "idempotency lookup failed")

				return
			}

			if stored != nil {
				if stored.Fingerprint != fingerprint {
					writeError(w, http.StatusUnprocessableEntity, codeIdempotencyMismatch,
						"idempotency key was already used with a different request body")

					return
				}

				replay(w, cfg.ReplayedHeader, stored)

				return
			}

			acquired, err := cache.AcquireLock(ctx, cacheKey, cfg.LockTTL)
			if err != nil {
				degrade(err, "idempotency lock failed")

				return
			}

			if !acquired {
				writeError(w, http.StatusConflict, codeRequestInProgress,
					"a request with this idempotency key is already being processed")

				return
			}

			// The lock and the stored record must outlive a client that hangs up.
			detached := context.WithoutCancel(ctx)

			defer func() {
				if err := cache.ReleaseLock(detached, cacheKey); err != nil {
					reqLog.Warn().Err(err).Msg("failed to release idempotency lock")
				}
			}()

			recorder := newCapturingWriter(w)
			next.ServeHTTP(recorder, r.WithContext(idempotency.WithKey(ctx, key)))

			record := &idempotency.Record{
				StatusCode:  recorder.statusCode,
				Header:      recorder.Header().Clone(),
				Body:        recorder.body.Bytes(),
				Fingerprint: fingerprint,
				CreatedAt:   time.Now().UTC(),
			}

			if !record.Replayable() {
				return
			}

			if err := cache.Set(detached, cacheKey, record, cfg.CacheTTL); err != nil {
				reqLog.Warn().Err(err).Msg("failed to store idempotent response")
			}
		})
	}
}

func replay(w http.ResponseWriter, replayedHeader string, record *idempotency.Record) {
	for name, values := range record.Header {
		w.Header()[name] = values
	}

	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(record.StatusCode)
	_, _ = w.Write(record.Body)
}

// capturingWriter tees the response into a buffer for storage.
type capturingWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func newCapturingWriter(w http.ResponseWriter) *capturingWriter {
	return &capturingWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (c *capturingWriter) WriteHeader(code int) {
	if c.wroteHeader {
		return
	}

	c.statusCode = code
	c.wroteHeader = true
	c.ResponseWriter.WriteHeader(code)
}

func (c *capturingWriter) Write(b []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}

	c.body.Write(b)

	return c.ResponseWriter.Write(b)
}

func (c *capturingWriter) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}
