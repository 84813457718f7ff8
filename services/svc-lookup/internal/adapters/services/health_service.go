package services

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/architeacher/imei-lookup/pkg/circuitbreaker"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"golang.org/x/sync/errgroup"
)

const (
	CheckDatabase = "database"
	CheckCache    = "cache"
	CheckProvider = "provider"

	defaultCheckTimeout = 2 * time.Second
)

type (
	dependency struct {
		name     string
		critical bool
		check    func(ctx context.Context) (model.DependencyStatus, string, error)
	}

	HealthService struct {
		dependencies []dependency
		version      model.VersionInfo
		startedAt    time.Time
		checkTimeout time.Duration
	}

	HealthOption func(*HealthService)
)

var _ ports.HealthChecker = (*HealthService)(nil)

// WithDatabase registers a critical dependency; a nil pinger is skipped.
func WithDatabase(pinger ports.Pinger) HealthOption {
	return withPinger(CheckDatabase, pinger, true)
}

// WithCache registers the cache; losing it only degrades the service.
func WithCache(pinger ports.Pinger) HealthOption {
	return withPinger(CheckCache, pinger, false)
}

func WithProvider(reporter ports.BreakerReporter) HealthOption {
	return func(s *HealthService) {
		if reporter == nil {
			return
		}

		s.dependencies = append(s.dependencies, dependency{
			name: CheckProvider,
			check: func(context.Context) (model.DependencyStatus, string, error) {
				switch state := reporter.BreakerState(); state {
				case circuitbreaker.StateOpen:
					return model.DependencyStatusDown, "circuit breaker open", nil
				case circuitbreaker.StateHalfOpen:
					return model.DependencyStatusDegraded, "circuit breaker probing", nil
				default:
					return model.DependencyStatusUp, "circuit breaker " + string(state), nil
				}
			},
		})
	}
}

func WithCheckTimeout(d time.Duration) HealthOption {
	return func(s *HealthService) {
		s.checkTimeout = d
	}
}

func withPinger(name string, pinger ports.Pinger, critical bool) HealthOption {
	return func(s *HealthService) {
		if pinger == nil {
			return
		}

		s.dependencies = append(s.dependencies, dependency{
			name:     name,
			critical: critical,
			check: func(ctx context.Context) (model.DependencyStatus, string, error) {
				if err := pinger.Ping(ctx); err != nil {
					return model.DependencyStatusDown, "unreachable", err
				}

				return model.DependencyStatusUp, "reachable", nil
			},
		})
	}
}

func NewHealthService(version model.VersionInfo, opts ...HealthOption) *HealthService {
	s := &HealthService{
		version:      version,
		startedAt:    time.Now().UTC(),
		checkTimeout: defaultCheckTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *HealthService) Liveness(_ context.Context) (*model.LivenessReport, error) {
	return &model.LivenessReport{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Version:   s.version.API,
	}, nil
}

func (s *HealthService) Readiness(ctx context.Context) (*model.ReadinessReport, error) {
	checks, err := s.runChecks(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ReadinessReport{
		Status:    model.AggregateStatus(checks),
		Timestamp: time.Now().UTC(),
		Version:   s.version.API,
		Checks:    checks,
	}, nil
}

func (s *HealthService) Health(ctx context.Context) (*model.HealthReport, error) {
	checks, err := s.runChecks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	uptime := now.Sub(s.startedAt)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &model.HealthReport{
		Status:    model.AggregateStatus(checks),
		Timestamp: now,
		Version:   s.version,
		Uptime: model.UptimeInfo{
			StartedAt:       s.startedAt,
			Duration:        uptime.Round(time.Second).String(),
			DurationSeconds: uint64(uptime.Seconds()),
		},
		Checks: checks,
		System: model.SystemInfo{
			Memory: model.MemoryInfo{
				AllocMB:      bytesToMB(mem.Alloc),
				TotalAllocMB: bytesToMB(mem.TotalAlloc),
				SysMB:        bytesToMB(mem.Sys),
				GCCycles:     mem.NumGC,
			},
			Goroutines: uint(runtime.NumGoroutine()),
			CPUCores:   uint(runtime.NumCPU()),
		},
	}, nil
}

// runChecks probes every dependency concurrently. A failing probe is part of
// the report, so the group only errors when ctx itself is done.
func (s *HealthService) runChecks(ctx context.Context) (map[string]model.DependencyCheck, error) {
	var (
		mu     sync.Mutex
		checks = make(map[string]model.DependencyCheck, len(s.dependencies))
	)

	group, groupCtx := errgroup.WithContext(ctx)

	for _, dep := range s.dependencies {
		group.Go(func() error {
			checkCtx, cancel := context.WithTimeout(groupCtx, s.checkTimeout)
			defer cancel()

			startTime := time.Now()
			status, message, err := dep.check(checkCtx)

			result := model.DependencyCheck{
				Status:      status,
				LatencyMs:   uint64(time.Since(startTime).Milliseconds()),
				Message:     message,
				LastChecked: time.Now().UTC(),
				Critical:    dep.critical,
			}

			if err != nil {
				result.Error = err.Error()
			}

			mu.Lock()
			checks[dep.name] = result
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("health check aborted: %w", err)
	}

	return checks, nil
}

func bytesToMB(b uint64) float64 {
	return float64(b) / 1024 / 1024
}
