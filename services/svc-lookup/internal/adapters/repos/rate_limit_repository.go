package repos

import (
	"context"
	"time"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
	"github.com/throttled/throttled/v2"
)

// RateLimitStore is a throttled.GCRAStoreCtx over KeyDB so that limits hold
// across replicas.
type RateLimitStore struct {
	client *infrastructure.KeydbClient
	prefix string
}

var _ throttled.GCRAStoreCtx = (*RateLimitStore)(nil)

func NewRateLimitStore(client *infrastructure.KeydbClient, prefix string) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: prefix + ":",
	}
}

func (s *RateLimitStore) GetWithTime(ctx context.Context, key string) (int64, time.Time, error) {
	return s.client.GetInt64(ctx, s.prefix+key)
}

func (s *RateLimitStore) SetIfNotExistsWithTTL(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error) {
	return s.client.SetInt64NX(ctx, s.prefix+key, value, ttl)
}

func (s *RateLimitStore) CompareAndSwapWithTTL(ctx context.Context, key string, old, new int64, ttl time.Duration) (bool, error) {
	return s.client.CompareAndSwapInt64(ctx, s.prefix+key, old, new, ttl)
}
