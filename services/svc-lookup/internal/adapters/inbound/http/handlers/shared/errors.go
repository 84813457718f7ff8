package shared

import (
	"context"
	"errors"
	"net/http"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/outbound/dhru"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

const (
	CodeInvalidIdentifier     = "INVALID_IDENTIFIER"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeInvalidJSON           = "INVALID_JSON"
	CodeRequestTooLarge       = "REQUEST_TOO_LARGE"
	CodeNotFound              = "NOT_FOUND"
	CodeProviderBadData       = "PROVIDER_BAD_DATA"
	CodeProviderRejected      = "PROVIDER_REJECTED"
	CodeProviderUnavailable   = "PROVIDER_UNAVAILABLE"
	CodeProviderTimeout       = "PROVIDER_TIMEOUT"
	CodeProviderRateLimited   = "PROVIDER_RATE_LIMITED"
	CodePersistenceDisabled   = "PERSISTENCE_DISABLED"
	CodeCacheUnavailable      = "CACHE_UNAVAILABLE"
	CodeDatabaseUnavailable   = "DATABASE_UNAVAILABLE"
	CodeRequestCanceled       = "REQUEST_CANCELED"
	CodeInternalError         = "INTERNAL_ERROR"
	statusClientClosedRequest = 499
)

type validationDetails struct {
	Errors         []model.ValidationError `json:"errors"`
	Classification any                     `json:"classification,omitempty"`
}

// ErrorStatus maps an error from the use cases to a status, an error code and
// a client safe message.
func ErrorStatus(err error) (int, string, string) {
	if pe, ok := dhru.AsProviderError(err); ok {
		switch pe.Category {
		case dhru.CategoryNotFound:
			return http.StatusNotFound, CodeNotFound, pe.Message
		case dhru.CategoryRateLimited:
			return http.StatusTooManyRequests, CodeProviderRateLimited, "device provider is rate limiting requests"
		case dhru.CategoryTimeout:
			return http.StatusGatewayTimeout, CodeProviderTimeout, "device provider did not answer in time"
		case dhru.CategoryProviderOutage:
			return http.StatusServiceUnavailable, CodeProviderUnavailable, "device provider is unavailable"
		case dhru.CategoryAuthentication:
			return http.StatusBadGateway, CodeProviderRejected, "device provider rejected the service credentials"
		case dhru.CategoryBadData, dhru.CategoryContractMismatch:
			return http.StatusBadGateway, CodeProviderBadData, pe.Message
		}
	}

	switch {
	case errors.Is(err, model.ErrInvalidIdentifier):
		return http.StatusBadRequest, CodeInvalidIdentifier, err.Error()
	case errors.Is(err, model.ErrRecordNotFound):
		return http.StatusNotFound, CodeNotFound, "record not found"
	case errors.Is(err, model.ErrPersistenceDisabled):
		return http.StatusServiceUnavailable, CodePersistenceDisabled, "lookup records are not configured"
	case errors.Is(err, model.ErrCacheUnavailable):
		return http.StatusServiceUnavailable, CodeCacheUnavailable, "cache is not configured"
	case errors.Is(err, model.ErrDatabaseConnection), errors.Is(err, model.ErrDatabaseQuery):
		return http.StatusServiceUnavailable, CodeDatabaseUnavailable, "lookup records are temporarily unavailable"
	case errors.Is(err, model.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeProviderTimeout, "request timed out"
	case errors.Is(err, model.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, CodeProviderUnavailable, "device provider is unavailable"
	case errors.Is(err, model.ErrProviderRejected):
		return http.StatusBadGateway, CodeProviderRejected, "device provider rejected the request"
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, CodeRequestCanceled, "request canceled"
	}

	var validationErrs *model.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, CodeValidationFailed, err.Error()
	}

	return http.StatusInternalServerError, CodeInternalError, "internal server error"
}

// WriteDomainError renders err with the status chosen by ErrorStatus.
// Validation failures carry their field errors and, for identifiers, the
// classification in details.
func WriteDomainError(w http.ResponseWriter, err error) {
	status, code, message := ErrorStatus(err)

	var details any

	var validationErrs *model.ValidationErrors
	if errors.As(err, &validationErrs) {
		details = validationDetails{
			Errors:         validationErrs.Errors,
			Classification: validationErrs.Details,
		}
	}

	WriteError(w, status, code, message, details)
}
