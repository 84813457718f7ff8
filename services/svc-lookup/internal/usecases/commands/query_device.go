package commands

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
	// QueryDeviceCommand is a billed lookup; it is a command because the
	// provider charges for it and the answer is recorded.
	QueryDeviceCommand struct {
		Input     string
		ServiceID string
		Format    string
		UserID    string
	}

	QueryDeviceCommandHandler = decorator.CommandHandler[QueryDeviceCommand, *model.LookupResult]

	queryDeviceCommandHandler struct {
		lookupService ports.LookupService
	}
)

func NewQueryDeviceCommandHandler(
	svc ports.LookupService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) QueryDeviceCommandHandler {
	return decorator.ApplyCommandDecorators[QueryDeviceCommand, *model.LookupResult](
		queryDeviceCommandHandler{lookupService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h queryDeviceCommandHandler) Handle(ctx context.Context, cmd QueryDeviceCommand) (*model.LookupResult, error) {
	return h.lookupService.QueryDevice(ctx, ports.QueryDeviceRequest{
		Input:     cmd.Input,
		ServiceID: cmd.ServiceID,
		Format:    cmd.Format,
		UserID:    cmd.UserID,
	})
}
