package queries

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/decorator"
	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	// ClassifyIdentifierQuery is free: it never reaches the provider.
	ClassifyIdentifierQuery struct {
		Input string
	}

	ClassifyIdentifierQueryHandler = decorator.QueryHandler[ClassifyIdentifierQuery, identifier.Identifier]

	classifyIdentifierQueryHandler struct {
		lookupService ports.LookupService
	}
)

func NewClassifyIdentifierQueryHandler(
	svc ports.LookupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ClassifyIdentifierQueryHandler {
	return decorator.ApplyQueryDecorators[ClassifyIdentifierQuery, identifier.Identifier](
		classifyIdentifierQueryHandler{lookupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h classifyIdentifierQueryHandler) Execute(ctx context.Context, query ClassifyIdentifierQuery) (identifier.Identifier, error) {
	return h.lookupService.Classify(ctx, query.Input)
}
