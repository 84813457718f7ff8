package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	appLogger "github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	healthProbeTimeout = 3 * time.Second
	scanBatchSize      = 100
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// compareAndSwap sets KEYS[1] to ARGV[2] with a PX of ARGV[3] only while it
// still holds ARGV[1].
var compareAndSwap = redis.NewScript(`
	local current = redis.call("GET", KEYS[1])
	if current == false or current ~= ARGV[1] then
		return 0
	end
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
	return 1
`)

// KeydbClient wraps a go-redis client talking to KeyDB or Redis.
type KeydbClient struct {
	client *redis.Client
	logger appLogger.Logger
	expiry time.Duration
}

func NewKeyDBClient(cfg config.Cache, logger appLogger.Logger) *KeydbClient {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           int(cfg.DB),
		PoolSize:     int(cfg.PoolSize),
		MinIdleConns: int(cfg.MinIdleConns),
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  cfg.PoolTimeout,
		MaxRetries:   int(cfg.MaxRetries),
	})

	return &KeydbClient{
		client: client,
		logger: logger.Component("keydb"),
		expiry: cfg.DefaultExpiry,
	}
}

func (c *KeydbClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *KeydbClient) Close() error {
	return c.client.Close()
}

func (c *KeydbClient) Get(ctx context.Context, key string) ([]byte, error) {
	startTime := time.Now()

	result, err := c.client.Get(ctx, key).Bytes()

	c.logger.Debug().
		Str("key", key).
		Dur("duration", time.Since(startTime)).
		Bool("hit", err == nil).
		Msg("keydb get")

	switch {
	case errors.Is(err, redis.Nil):
		return nil, ErrCacheMiss
	case err != nil:
		return nil, fmt.Errorf("getting %q: %w", key, err)
	}

	return result, nil
}

// Set stores value under key; a zero ttl falls back to the configured default.
func (c *KeydbClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.expiry
	}

	startTime := time.Now()
	err := c.client.Set(ctx, key, value, ttl).Err()

	c.logger.Debug().
		Str("key", key).
		Str("expiry", ttl.String()).
		Dur("duration", time.Since(startTime)).
		Bool("success", err == nil).
		Msg("keydb set")

	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}

	return nil
}

// Lock is a SETNX with expiry; it reports whether this caller now owns key.
func (c *KeydbClient) Lock(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	acquired, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring lock %q: %w", key, err)
	}

	return acquired, nil
}

func (c *KeydbClient) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	removed, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("deleting keys: %w", err)
	}

	return removed, nil
}

// DeleteByPattern removes every key matching pattern using SCAN batches.
func (c *KeydbClient) DeleteByPattern(ctx context.Context, pattern string) (int64, error) {
	var (
		cursor  uint64
		removed int64
	)

	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return removed, fmt.Errorf("scanning %q: %w", pattern, err)
		}

		n, err := c.Delete(ctx, keys...)
		if err != nil {
			return removed, err
		}

		removed += n
		cursor = next

		if cursor == 0 {
			break
		}
	}

	c.logger.Info().Str("pattern", pattern).Int64("removed", removed).Msg("keydb keys purged")

	return removed, nil
}

func (c *KeydbClient) IsHealthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	return c.Ping(ctx) == nil
}

// GetInt64 returns -1 and the current time for a missing key, the value
// throttled's GCRA expects for a key it has not seen yet.
func (c *KeydbClient) GetInt64(ctx context.Context, key string) (int64, time.Time, error) {
	val, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, time.Now(), nil
		}

		return 0, time.Time{}, err
	}

	return val, time.Now(), nil
}

func (c *KeydbClient) SetInt64NX(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, key, value, ttl).Result()
}

func (c *KeydbClient) CompareAndSwapInt64(ctx context.Context, key string, old, new int64, ttl time.Duration) (bool, error) {
	result, err := compareAndSwap.Run(ctx, c.client, []string{key}, old, new, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}
