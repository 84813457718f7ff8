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
	GetBalanceQuery struct{}

	GetBalanceQueryHandler = decorator.QueryHandler[GetBalanceQuery, *model.Balance]

	getBalanceQueryHandler struct {
		lookupService ports.LookupService
	}
)

func NewGetBalanceQueryHandler(
	svc ports.LookupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetBalanceQueryHandler {
	return decorator.ApplyQueryDecorators[GetBalanceQuery, *model.Balance](
		getBalanceQueryHandler{lookupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getBalanceQueryHandler) Execute(ctx context.Context, _ GetBalanceQuery) (*model.Balance, error) {
	return h.lookupService.Balance(ctx)
}
