//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/records_repository.go . RecordsRepository

import (
	"context"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

type RecordsRepository interface {
	// SaveLookup upserts the device snapshot and appends the query record
	// in one transaction.
	SaveLookup(ctx context.Context, record model.LookupRecord) error

	Stats(ctx context.Context) (*model.RecordStats, error)

	// ListHistory returns records for one identifier, newest first.
	ListHistory(ctx context.Context, identifier string, limit int) ([]model.QueryRecord, error)

	Ping(ctx context.Context) error
}
