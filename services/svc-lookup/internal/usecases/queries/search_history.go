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
	// SearchHistoryQuery looks up the provider's order history by IMEI or order id.
	SearchHistoryQuery struct {
		Term   string
		Format string
	}

	SearchHistoryQueryHandler = decorator.QueryHandler[SearchHistoryQuery, *model.HistorySearch]

	searchHistoryQueryHandler struct {
		lookupService ports.LookupService
	}
)

func NewSearchHistoryQueryHandler(
	svc ports.LookupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SearchHistoryQueryHandler {
	return decorator.ApplyQueryDecorators[SearchHistoryQuery, *model.HistorySearch](
		searchHistoryQueryHandler{lookupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h searchHistoryQueryHandler) Execute(ctx context.Context, query SearchHistoryQuery) (*model.HistorySearch, error) {
	return h.lookupService.SearchHistory(ctx, query.Term, query.Format)
}
