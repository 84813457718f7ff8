// Package idempotency validates client supplied Idempotency-Key values and
// derives storage keys and request fingerprints from them.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	HeaderName   = "Idempotency-Key"
	MinKeyLength = 16
	MaxKeyLength = 128
	KeyPrefix    = "idempotency"
)

var (
	ErrKeyTooShort = errors.New("idempotency key must be at least 16 characters")
	ErrKeyTooLong  = errors.New("idempotency key must not exceed 128 characters")
	ErrKeyInvalid  = errors.New("idempotency key contains invalid characters")

	validKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
)

func Validate(key string) error {
	switch {
	case len(key) < MinKeyLength:
		return ErrKeyTooShort
	case len(key) > MaxKeyLength:
		return ErrKeyTooLong
	case !validKeyPattern.MatchString(key):
		return ErrKeyInvalid
	default:
		return nil
	}
}

// BuildCacheKey scopes a client key to the caller and the route so that two
// operators reusing the same key never see each other's responses.
func BuildCacheKey(method, path, subject, idempotencyKey string) string {
	hash := sha256.Sum256([]byte(strings.Join([]string{method, path, subject, idempotencyKey}, "\x00")))

	return KeyPrefix + ":" + hex.EncodeToString(hash[:])
}

// LockKey names the short lived lock held while the first request runs.
func LockKey(cacheKey string) string {
	return cacheKey + ":lock"
}

// Fingerprint identifies a request body; a replay with a different body
// under the same key is rejected.
func Fingerprint(body []byte) string {
	return strconv.FormatUint(xxhash.Sum64(body), 16)
}
