package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	headerContentType = "Content-Type"
	applicationJSON   = "application/json"

	codeInternalError          = "INTERNAL_ERROR"
	codeUnauthorized           = "UNAUTHORIZED"
	codeRateLimitExceeded      = "RATE_LIMIT_EXCEEDED"
	codeRateLimiterUnavailable = "RATE_LIMITER_UNAVAILABLE"
	codeInvalidIdempotencyKey  = "INVALID_IDEMPOTENCY_KEY"
	codeRequestInProgress      = "REQUEST_IN_PROGRESS"
	codeIdempotencyMismatch    = "IDEMPOTENCY_KEY_REUSED"
	codeCacheUnavailable       = "CACHE_UNAVAILABLE"
	codeValidationFailed       = "VALIDATION_FAILED"
	codeNotFound               = "NOT_FOUND"
	codeMethodNotAllowed       = "METHOD_NOT_ALLOWED"
	codeRequestTooLarge        = "REQUEST_TOO_LARGE"
)

// errorBody mirrors the API error envelope rendered by the handlers.
type errorBody struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set(headerContentType, applicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(errorBody{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// NotFound and MethodNotAllowed keep chi's fallbacks on the JSON envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
}
