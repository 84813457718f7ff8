package model

import (
	"errors"
	"strings"
)

var (
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrProviderUnavailable = errors.New("device provider unavailable")
	ErrProviderRejected    = errors.New("device provider rejected the request")
	ErrRecordNotFound      = errors.New("record not found")
	ErrDatabaseQuery       = errors.New("database query failed")
	ErrDatabaseConnection  = errors.New("database connection failed")
	ErrPersistenceDisabled = errors.New("persistence is not configured")
	ErrCacheUnavailable    = errors.New("cache unavailable")
	ErrTimeout             = errors.New("request timeout")
)

const (
	ValidationCodeRequired   = "required"
	ValidationCodeInvalid    = "invalid"
	ValidationCodeOutOfRange = "out_of_range"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationErrors collects input problems found before any remote call.
type ValidationErrors struct {
	Errors []ValidationError
	// Details carries extra context such as the identifier classification.
	Details any
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		messages = append(messages, e.Message)
	}

	return strings.Join(messages, "; ")
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Is lets callers match any validation failure with ErrInvalidIdentifier
// when the offending field is the identifier.
func (v *ValidationErrors) Is(target error) bool {
	if target != ErrInvalidIdentifier {
		return false
	}

	for _, e := range v.Errors {
		if e.Field == "identifier" {
			return true
		}
	}

	return false
}
