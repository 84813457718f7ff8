package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/throttled/throttled/v2"
)

const (
	RateLimitLimitHeader     = "RateLimit-Limit"
	RateLimitRemainingHeader = "RateLimit-Remaining"
	RateLimitResetHeader     = "RateLimit-Reset"
	RetryAfterHeader         = "Retry-After"
)

// ThrottledRateLimiting applies a GCRA quota per authenticated subject, or
// per client IP for anonymous callers. Store failures let traffic through
// when cfg.GracefulDegraded is set.
func ThrottledRateLimiting(
	cfg config.ThrottledRateLimiting,
	store throttled.GCRAStoreCtx,
	log logger.Logger,
) (func(http.Handler) http.Handler, error) {
	quota := throttled.RateQuota{
		MaxRate:  throttled.PerMin(int(cfg.RequestsPerMinute)),
		MaxBurst: int(cfg.BurstSize),
	}

	limiter, err := throttled.NewGCRARateLimiterCtx(store, quota)
	if err != nil {
		return nil, err
	}

	log = log.Component("rate_limiter")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if matchesPath(r.URL.Path, cfg.SkipPaths) {
				next.ServeHTTP(w, r)

				return
			}

			limited, result, err := limiter.RateLimitCtx(r.Context(), rateLimitKey(r), 1)
			if err != nil {
				reqLog := log.WithContext(r.Context())
				reqLog.Warn().Err(err).Msg("rate limiter store error")

				if cfg.GracefulDegraded {
					next.ServeHTTP(w, r)

					return
				}

				writeError(w, http.StatusServiceUnavailable, codeRateLimiterUnavailable,
					"rate limiting service temporarily unavailable")

				return
			}

			setRateLimitHeaders(w, result)

			if limited {
				w.Header().Set(RetryAfterHeader, strconv.Itoa(int(result.RetryAfter.Round(time.Second).Seconds())))
				writeError(w, http.StatusTooManyRequests, codeRateLimitExceeded,
					"too many requests, please try again later")

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// matchesPath reports whether path equals one of prefixes or sits below it.
func matchesPath(path string, prefixes []string) bool {
	for _, skip := range prefixes {
		if skip != "" && (path == skip || strings.HasPrefix(path, strings.TrimSuffix(skip, "/")+"/")) {
			return true
		}
	}

	return false
}

func rateLimitKey(r *http.Request) string {
	if subject := GetSubject(r.Context()); subject != "" {
		return "user:" + subject
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return "ip:" + host
}

func setRateLimitHeaders(w http.ResponseWriter, result throttled.RateLimitResult) {
	w.Header().Set(RateLimitLimitHeader, strconv.Itoa(result.Limit))
	w.Header().Set(RateLimitRemainingHeader, strconv.Itoa(result.Remaining))
	w.Header().Set(RateLimitResetHeader, strconv.Itoa(int(result.ResetAfter.Round(time.Second).Seconds())))
}
