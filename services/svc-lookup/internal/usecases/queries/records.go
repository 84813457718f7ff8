package queries

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	GetRecordStatsQuery struct{}

	// ListDeviceHistoryQuery lists locally recorded lookups for one identifier.
	ListDeviceHistoryQuery struct {
		Identifier string
		Limit      int
	}

	GetRecordStatsQueryHandler    = decorator.QueryHandler[GetRecordStatsQuery, *model.RecordStats]
	ListDeviceHistoryQueryHandler = decorator.QueryHandler[ListDeviceHistoryQuery, []model.QueryRecord]

	getRecordStatsQueryHandler struct {
		lookupService ports.LookupService
	}

	listDeviceHistoryQueryHandler struct {
		lookupService ports.LookupService
	}
)

func NewGetRecordStatsQueryHandler(
	svc ports.LookupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetRecordStatsQueryHandler {
	return decorator.ApplyQueryDecorators[GetRecordStatsQuery, *model.RecordStats](
		getRecordStatsQueryHandler{lookupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getRecordStatsQueryHandler) Execute(ctx context.Context, _ GetRecordStatsQuery) (*model.RecordStats, error) {
	return h.lookupService.RecordStats(ctx)
}

func NewListDeviceHistoryQueryHandler(
	svc ports.LookupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDeviceHistoryQueryHandler {
	return decorator.ApplyQueryDecorators[ListDeviceHistoryQuery, []model.QueryRecord](
		listDeviceHistoryQueryHandler{lookupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDeviceHistoryQueryHandler) Execute(ctx context.Context, query ListDeviceHistoryQuery) ([]model.QueryRecord, error) {
	return h.lookupService.DeviceHistory(ctx, query.Identifier, query.Limit)
}
