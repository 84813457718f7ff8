//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker

import (
	"context"

	"github.com/architeacher/imei-lookup/pkg/circuitbreaker"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

type (
	HealthChecker interface {
		Liveness(ctx context.Context) (*model.LivenessReport, error)
		Readiness(ctx context.Context) (*model.ReadinessReport, error)
		Health(ctx context.Context) (*model.HealthReport, error)
	}

	// Pinger is any dependency that can report reachability.
	Pinger interface {
		Ping(ctx context.Context) error
	}

	// BreakerReporter exposes a client's circuit breaker so health checks
	// never have to spend a paid provider call.
	BreakerReporter interface {
		BreakerState() circuitbreaker.State
	}
)
