package services

import (
	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
)

const fieldIdentifier = "identifier"

// mapIdentifierError turns a rejected classification into the validation
// error the HTTP layer renders as 400, the classification attached.
func mapIdentifierError(id identifier.Identifier) *model.ValidationErrors {
	verr := &model.ValidationErrors{Details: id}

	switch id.Reason {
	case identifier.ReasonEmpty:
		verr.Add(fieldIdentifier, "identifier is required", model.ValidationCodeRequired)
	case identifier.ReasonIMEILength:
		verr.Add(fieldIdentifier, "IMEI must be exactly 15 digits", model.ValidationCodeInvalid)
	case identifier.ReasonIMEIChecksum:
		verr.Add(fieldIdentifier, "IMEI check digit is invalid", model.ValidationCodeInvalid)
	default:
		verr.Add(fieldIdentifier, "value is neither an IMEI nor a serial number", model.ValidationCodeInvalid)
	}

	return verr
}

func requiredField(field, message string) *model.ValidationErrors {
	verr := &model.ValidationErrors{}
	verr.Add(field, message, model.ValidationCodeRequired)

	return verr
}
