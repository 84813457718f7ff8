package model

import "time"

type (
	HealthStatus string

	DependencyStatus string

	DependencyCheck struct {
		Status      DependencyStatus `json:"status"`
		LatencyMs   uint64           `json:"latency_ms"`
		Message     string           `json:"message,omitempty"`
		LastChecked time.Time        `json:"last_checked"`
		Error       string           `json:"error,omitempty"`
		// Critical dependencies take the service down when they fail;
		// the rest only degrade it.
		Critical bool `json:"critical"`
	}

	LivenessReport struct {
		Status    HealthStatus `json:"status"`
		Timestamp time.Time    `json:"timestamp"`
		Version   string       `json:"version"`
	}

	ReadinessReport struct {
		Status    HealthStatus               `json:"status"`
		Timestamp time.Time                  `json:"timestamp"`
		Version   string                     `json:"version"`
		Checks    map[string]DependencyCheck `json:"checks"`
	}

	HealthReport struct {
		Status    HealthStatus               `json:"status"`
		Timestamp time.Time                  `json:"timestamp"`
		Version   VersionInfo                `json:"version"`
		Uptime    UptimeInfo                 `json:"uptime"`
		Checks    map[string]DependencyCheck `json:"checks"`
		System    SystemInfo                 `json:"system"`
	}

	VersionInfo struct {
		API    string `json:"api"`
		Build  string `json:"build"`
		Commit string `json:"commit"`
		Go     string `json:"go"`
	}

	UptimeInfo struct {
		StartedAt       time.Time `json:"started_at"`
		Duration        string    `json:"duration"`
		DurationSeconds uint64    `json:"duration_seconds"`
	}

	SystemInfo struct {
		Memory     MemoryInfo `json:"memory"`
		Goroutines uint       `json:"goroutines"`
		CPUCores   uint       `json:"cpu_cores"`
	}

	MemoryInfo struct {
		AllocMB      float64 `json:"alloc_mb"`
		TotalAllocMB float64 `json:"total_alloc_mb"`
		SysMB        float64 `json:"sys_mb"`
		GCCycles     uint32  `json:"gc_cycles"`
	}
)

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusDown     HealthStatus = "down"

	DependencyStatusUp       DependencyStatus = "up"
	DependencyStatusDown     DependencyStatus = "down"
	DependencyStatusDegraded DependencyStatus = "degraded"
	DependencyStatusUnknown  DependencyStatus = "unknown"
)

// AggregateStatus folds dependency checks into one status.
func AggregateStatus(checks map[string]DependencyCheck) HealthStatus {
	status := HealthStatusOK

	for _, check := range checks {
		switch check.Status {
		case DependencyStatusUp:
		case DependencyStatusDown:
			if check.Critical {
				return HealthStatusDown
			}

			status = HealthStatusDegraded
		default:
			status = HealthStatusDegraded
		}
	}

	return status
}
