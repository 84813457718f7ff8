package shared

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/middleware"
	"go.opentelemetry.io/otel/trace"
)

const (
	apiVersion = "v1"

	// W3C traceparent: {version}-{trace-id}-{parent-id}-{trace-flags}
	traceparentVersionLength   = 2
	traceparentSeparatorLength = 1
	traceparentTraceIDLength   = 32
	traceparentParentIDLength  = 16
	traceparentFlagsLength     = 2

	traceparentTraceIDStart = traceparentVersionLength + traceparentSeparatorLength
	traceparentTraceIDEnd   = traceparentTraceIDStart + traceparentTraceIDLength
	traceparentMinLength    = traceparentVersionLength + traceparentSeparatorLength +
		traceparentTraceIDLength + traceparentSeparatorLength +
		traceparentParentIDLength + traceparentSeparatorLength +
		traceparentFlagsLength
)

type (
	ResponseMeta struct {
		RequestID  string `json:"requestId"`
		TraceID    string `json:"traceId,omitempty"`
		APIVersion string `json:"apiVersion"`
	}

	// EnvelopedResponse wraps every successful payload.
	EnvelopedResponse struct {
		Data any          `json:"data"`
		Meta ResponseMeta `json:"meta"`
	}

	ErrorResponse struct {
		Code      string    `json:"code"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
		Details   any       `json:"details,omitempty"`
	}
)

// NewMeta prefers the active span's trace ID and falls back to the
// incoming traceparent header.
func NewMeta(r *http.Request) ResponseMeta {
	traceID := ""
	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		traceID = sc.TraceID().String()
	} else {
		traceID = ExtractTraceID(r)
	}

	return ResponseMeta{
		RequestID:  middleware.GetRequestID(r.Context()),
		TraceID:    traceID,
		APIVersion: apiVersion,
	}
}

func ExtractTraceID(r *http.Request) string {
	traceparent := r.Header.Get("traceparent")
	if len(traceparent) < traceparentMinLength {
		return ""
	}

	return traceparent[traceparentTraceIDStart:traceparentTraceIDEnd]
}

// WriteData renders data inside the response envelope.
func WriteData(w http.ResponseWriter, r *http.Request, status int, data any) {
	WriteJSON(w, status, EnvelopedResponse{
		Data: data,
		Meta: NewMeta(r),
	})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(HeaderContentType, "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, code, message string, details any) {
	WriteJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
}
