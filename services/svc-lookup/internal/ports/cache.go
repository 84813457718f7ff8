//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/idempotency_cache.go . IdempotencyCache

import (
	"context"
	"time"

	"github.com/architeacher/imei-lookup/pkg/idempotency"
)

// IdempotencyCache stores the first response produced for an Idempotency-Key.
type IdempotencyCache interface {
	// Get returns nil, nil when nothing is stored under key.
	Get(ctx context.Context, key string) (*idempotency.Record, error)

	Set(ctx context.Context, key string, record *idempotency.Record, ttl time.Duration) error

	// AcquireLock reports false when another request holds the key.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)

	ReleaseLock(ctx context.Context, key string) error

	IsHealthy(ctx context.Context) bool
}
