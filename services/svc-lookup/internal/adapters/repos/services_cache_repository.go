package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
)

const servicesKey = "services"

// ServicesCacheRepository keeps the provider catalog under
// "<prefix>:services".
type ServicesCacheRepository struct {
	client *infrastructure.KeydbClient
	prefix string
}

func NewServicesCacheRepository(client *infrastructure.KeydbClient, prefix string) *ServicesCacheRepository {
	return &ServicesCacheRepository{client: client, prefix: prefix}
}

func (r *ServicesCacheRepository) GetServices(ctx context.Context) (*model.ServiceCatalog, bool, error) {
	data, err := r.client.Get(ctx, r.key(servicesKey))
	if err != nil {
		if errors.Is(err, infrastructure.ErrCacheMiss) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("%w: %v", model.ErrCacheUnavailable, err)
	}

	var catalog model.ServiceCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, false, fmt.Errorf("decoding cached services: %w", err)
	}

	return &catalog, true, nil
}

func (r *ServicesCacheRepository) SetServices(ctx context.Context, catalog *model.ServiceCatalog, ttl time.Duration) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encoding services: %w", err)
	}

	if err := r.client.Set(ctx, r.key(servicesKey), data, ttl); err != nil {
		return fmt.Errorf("%w: %v", model.ErrCacheUnavailable, err)
	}

	return nil
}

func (r *ServicesCacheRepository) Purge(ctx context.Context) (int64, error) {
	removed, err := r.client.DeleteByPattern(ctx, r.key("*"))
	if err != nil {
		return removed, fmt.Errorf("%w: %v", model.ErrCacheUnavailable, err)
	}

	return removed, nil
}

func (r *ServicesCacheRepository) key(suffix string) string {
	return r.prefix + ":" + suffix
}
