package dhru

import (
	"errors"
	"fmt"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

type Category string

const (
	CategoryTimeout          Category = "timeout"
	CategoryBadData          Category = "bad_data"
	CategoryAuthentication   Category = "authentication"
	CategoryProviderOutage   Category = "provider_outage"
	CategoryContractMismatch Category = "contract_mismatch"
	CategoryNotFound         Category = "not_found"
	CategoryRateLimited      Category = "rate_limited"
	CategoryInternal         Category = "internal"
)

// ProviderError is every failure the client returns. Message never contains
// the API key.
type ProviderError struct {
	Category   Category
	Operation  string
	Message    string
	StatusCode int
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("dhru %s: %s: %s: %v", e.Operation, e.Category, e.Message, e.Underlying)
	}

	return fmt.Sprintf("dhru %s: %s: %s", e.Operation, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// Is maps categories onto the domain sentinels the service layer matches.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case model.ErrTimeout:
		return e.Category == CategoryTimeout
	case model.ErrProviderUnavailable:
		switch e.Category {
		case CategoryTimeout, CategoryProviderOutage, CategoryRateLimited:
			return true
		}
	case model.ErrProviderRejected:
		switch e.Category {
		case CategoryBadData, CategoryNotFound, CategoryAuthentication, CategoryContractMismatch:
			return true
		}
	}

	return false
}

// AsProviderError unwraps err into a *ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}

	return nil, false
}

// CategoryOf returns CategoryInternal for errors not produced by the client.
func CategoryOf(err error) Category {
	if pe, ok := AsProviderError(err); ok {
		return pe.Category
	}

	return CategoryInternal
}

// IsRetryable reports whether err is a retryable provider failure.
func IsRetryable(err error) bool {
	pe, ok := AsProviderError(err)

	return ok && pe.Retryable
}

// providerHealthy is the breaker's success test. Only timeouts, outages and
// rate limiting count against the provider; refusals, caller cancellations
// and local failures do not.
func providerHealthy(err error) bool {
	if err == nil {
		return true
	}

	switch CategoryOf(err) {
	case CategoryTimeout, CategoryProviderOutage, CategoryRateLimited:
		return false
	default:
		return true
	}
}
