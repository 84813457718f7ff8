package decorator

import (
	"context"
	"sync/atomic"
	"time"
)

type (
	CacheStatus string

	cacheStatusKey struct{}

	CacheConfig struct {
		Enabled bool
		TTL     time.Duration
		// WriteTimeout bounds the background write issued after a miss.
		WriteTimeout time.Duration
	}

	CacheGetter[Q Query, R Result] interface {
		Get(ctx context.Context, query Q) (R, bool, error)
	}

	CacheSetter[Q Query, R Result] interface {
		Set(ctx context.Context, query Q, result R, ttl time.Duration) error
	}

	Cache[Q Query, R Result] interface {
		CacheGetter[Q, R]
		CacheSetter[Q, R]
	}

	queryCachingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		cache  Cache[Q, R]
		config CacheConfig
	}
)

const (
	CacheStatusHit    CacheStatus = "HIT"
	CacheStatusMiss   CacheStatus = "MISS"
	CacheStatusBypass CacheStatus = "BYPASS"
	CacheStatusError  CacheStatus = "ERROR"

	defaultCacheWriteTimeout = 2 * time.Second
)

// WithCacheStatusTracking installs a slot the caching decorator reports into,
// so callers up the stack can read the outcome with GetCacheStatus.
func WithCacheStatusTracking(ctx context.Context) context.Context {
	if _, ok := ctx.Value(cacheStatusKey{}).(*atomic.Value); ok {
		return ctx
	}

	return context.WithValue(ctx, cacheStatusKey{}, &atomic.Value{})
}

// GetCacheStatus reports BYPASS when no caching decorator ran.
func GetCacheStatus(ctx context.Context) CacheStatus {
	slot, ok := ctx.Value(cacheStatusKey{}).(*atomic.Value)
	if !ok {
		return CacheStatusBypass
	}

	if status, ok := slot.Load().(CacheStatus); ok {
		return status
	}

	return CacheStatusBypass
}

func setCacheStatus(ctx context.Context, status CacheStatus) {
	if slot, ok := ctx.Value(cacheStatusKey{}).(*atomic.Value); ok {
		slot.Store(status)
	}
}

func NewQueryCachingDecorator[Q Query, R Result](
	base QueryHandler[Q, R],
	cache Cache[Q, R],
	config CacheConfig,
) QueryHandler[Q, R] {
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaultCacheWriteTimeout
	}

	return queryCachingDecorator[Q, R]{
		base:   base,
		cache:  cache,
		config: config,
	}
}

func (d queryCachingDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	if !d.config.Enabled || d.cache == nil {
		setCacheStatus(ctx, CacheStatusBypass)

		return d.base.Execute(ctx, query)
	}

	cached, hit, err := d.cache.Get(ctx, query)
	if err == nil && hit {
		setCacheStatus(ctx, CacheStatusHit)

		return cached, nil
	}

	status := CacheStatusMiss
	if err != nil {
		status = CacheStatusError
	}

	result, err := d.base.Execute(ctx, query)
	setCacheStatus(ctx, status)

	if err != nil {
		var zero R

		return zero, err
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.config.WriteTimeout)
		defer cancel()

		_ = d.cache.Set(writeCtx, query, result, d.config.TTL)
	}()

	return result, nil
}
