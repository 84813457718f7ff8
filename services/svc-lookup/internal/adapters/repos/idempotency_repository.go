package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/imei-lookup/pkg/idempotency"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
)

const lockValue = "processing"

// IdempotencyRepository stores replayable responses in KeyDB.
type IdempotencyRepository struct {
	client *infrastructure.KeydbClient
}

func NewIdempotencyRepository(client *infrastructure.KeydbClient) *IdempotencyRepository {
	return &IdempotencyRepository{client: client}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*idempotency.Record, error) {
	data, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, infrastructure.ErrCacheMiss) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting idempotency record: %w", err)
	}

	record, err := idempotency.UnmarshalRecord(data)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *IdempotencyRepository) Set(ctx context.Context, key string, record *idempotency.Record, ttl time.Duration) error {
	data, err := record.Marshal()
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, data, ttl)
}

func (r *IdempotencyRepository) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.Lock(ctx, idempotency.LockKey(key), lockValue, ttl)
}

func (r *IdempotencyRepository) ReleaseLock(ctx context.Context, key string) error {
	_, err := r.client.Delete(ctx, idempotency.LockKey(key))

	return err
}

func (r *IdempotencyRepository) IsHealthy(ctx context.Context) bool {
	return r.client.IsHealthy(ctx)
}
