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
	FetchLivenessQuery  struct{}
	FetchReadinessQuery struct{}
	FetchHealthQuery    struct{}

	FetchLivenessQueryHandler  = decorator.QueryHandler[FetchLivenessQuery, *model.LivenessReport]
	FetchReadinessQueryHandler = decorator.QueryHandler[FetchReadinessQuery, *model.ReadinessReport]
	FetchHealthQueryHandler    = decorator.QueryHandler[FetchHealthQuery, *model.HealthReport]

	fetchLivenessQueryHandler struct {
		healthChecker ports.HealthChecker
	}

	fetchReadinessQueryHandler struct {
		healthChecker ports.HealthChecker
	}

	fetchHealthQueryHandler struct {
		healthChecker ports.HealthChecker
	}
)

func NewFetchLivenessQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchLivenessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchLivenessQuery, *model.LivenessReport](
		fetchLivenessQueryHandler{healthChecker: healthChecker},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchLivenessQueryHandler) Execute(ctx context.Context, _ FetchLivenessQuery) (*model.LivenessReport, error) {
	return h.healthChecker.Liveness(ctx)
}

func NewFetchReadinessQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchReadinessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchReadinessQuery, *model.ReadinessReport](
		fetchReadinessQueryHandler{healthChecker: healthChecker},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchReadinessQueryHandler) Execute(ctx context.Context, _ FetchReadinessQuery) (*model.ReadinessReport, error) {
	return h.healthChecker.Readiness(ctx)
}

func NewFetchHealthQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthQueryHandler {
	return decorator.ApplyQueryDecorators[FetchHealthQuery, *model.HealthReport](
		fetchHealthQueryHandler{healthChecker: healthChecker},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchHealthQueryHandler) Execute(ctx context.Context, _ FetchHealthQuery) (*model.HealthReport, error) {
	return h.healthChecker.Health(ctx)
}
