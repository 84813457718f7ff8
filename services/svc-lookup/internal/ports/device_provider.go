//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/device_provider.go . DeviceProvider

import (
	"context"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

// DeviceProvider is the remote device information API.
type DeviceProvider interface {
	QueryDevice(ctx context.Context, query model.ProviderQuery) (*model.ProviderResult, error)
	Balance(ctx context.Context) (*model.Balance, error)
	Services(ctx context.Context) (*model.ServiceCatalog, error)
	History(ctx context.Context, term, format string) (*model.HistorySearch, error)
}
