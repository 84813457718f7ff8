//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/lookup_service.go . LookupService

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

type (
	QueryDeviceRequest struct {
		Input     string
		ServiceID string
		Format    string
		UserID    string
	}

	LookupService interface {
		QueryDevice(ctx context.Context, req QueryDeviceRequest) (*model.LookupResult, error)
		Classify(ctx context.Context, raw string) (identifier.Identifier, error)
		Balance(ctx context.Context) (*model.Balance, error)
		Services(ctx context.Context) (*model.ServiceCatalog, error)
		SearchHistory(ctx context.Context, term, format string) (*model.HistorySearch, error)
		RecordStats(ctx context.Context) (*model.RecordStats, error)
		DeviceHistory(ctx context.Context, identifier string, limit int) ([]model.QueryRecord, error)
	}
)
