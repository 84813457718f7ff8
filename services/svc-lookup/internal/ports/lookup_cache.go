//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/services_cache.go . ServicesCache

import (
	"context"
	"time"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

// ServicesCache keeps the provider's service catalog. Device queries are
// never cached since every query is a billed order.
type ServicesCache interface {
	// GetServices reports false when nothing is cached.
	GetServices(ctx context.Context) (*model.ServiceCatalog, bool, error)

	SetServices(ctx context.Context, catalog *model.ServiceCatalog, ttl time.Duration) error

	// Purge drops every lookup cache entry and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
}
