package circuitbreaker

import "time"

type Config struct {
	Name    string
	Enabled bool

	// MaxRequests allowed through while half-open. Zero means one.
	MaxRequests uint

	// Interval clears the closed state counts. Zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint

	// IsSuccessful lets callers treat some errors, such as a provider
	// reporting an unknown device, as healthy responses.
	IsSuccessful func(err error) bool

	OnStateChange func(name string, from, to State)
}
