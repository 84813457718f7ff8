package shared

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/cespare/xxhash/v2"
)

const (
	HeaderCacheStatus  = "Cache-Status"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderIfNoneMatch  = "If-None-Match"
	HeaderLastModified = "Last-Modified"
	HeaderVary         = "Vary"
	HeaderContentType  = "Content-Type"
)

// SetCacheStatus reports the caching decorator's outcome for this request.
func SetCacheStatus(w http.ResponseWriter, status decorator.CacheStatus) {
	w.Header().Set(HeaderCacheStatus, string(status))
}

// SetCacheControl allows private caching for maxAge.
func SetCacheControl(w http.ResponseWriter, maxAge time.Duration) {
	w.Header().Set(HeaderCacheControl, "private, max-age="+strconv.FormatInt(int64(maxAge.Seconds()), 10))
	w.Header().Set(HeaderVary, "Authorization")
}

func SetLastModified(w http.ResponseWriter, t time.Time) {
	w.Header().Set(HeaderLastModified, t.UTC().Format(http.TimeFormat))
}

// ComputeETag hashes the JSON encoding of data. The envelope is left out
// since its request ID differs on every call.
func ComputeETag(data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	return `"` + strconv.FormatUint(xxhash.Sum64(payload), 16) + `"`, nil
}

// ETagMatches implements If-None-Match weak comparison, including lists
// and "*".
func ETagMatches(r *http.Request, etag string) bool {
	header := r.Header.Get(HeaderIfNoneMatch)
	if header == "" || etag == "" {
		return false
	}

	opaque := strings.TrimPrefix(etag, "W/")

	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == opaque {
			return true
		}
	}

	return false
}

// WriteCacheableData sets an ETag for data and answers 304 when the client
// already holds it.
func WriteCacheableData(w http.ResponseWriter, r *http.Request, data any) {
	etag, err := ComputeETag(data)
	if err == nil {
		w.Header().Set(HeaderETag, etag)

		if ETagMatches(r, etag) {
			w.WriteHeader(http.StatusNotModified)

			return
		}
	}

	WriteData(w, r, http.StatusOK, data)
}
