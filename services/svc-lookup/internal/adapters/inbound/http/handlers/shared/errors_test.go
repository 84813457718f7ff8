package shared_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/inbound/http/handlers/shared"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/outbound/dhru"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	t.Parallel()

	invalid := &model.ValidationErrors{}
	invalid.Add("identifier", "check digit mismatch", model.ValidationCodeInvalid)

	term := &model.ValidationErrors{}
	term.Add("term", "term is required", model.ValidationCodeRequired)

	provider := func(category dhru.Category) error {
		return fmt.Errorf("query device: %w", &dhru.ProviderError{Category: category, Operation: "query", Message: "provider said no"})
	}

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid identifier", err: invalid, wantStatus: http.StatusBadRequest, wantCode: shared.CodeInvalidIdentifier},
		{name: "other validation", err: term, wantStatus: http.StatusBadRequest, wantCode: shared.CodeValidationFailed},
		{name: "provider not found", err: provider(dhru.CategoryNotFound), wantStatus: http.StatusNotFound, wantCode: shared.CodeNotFound},
		{name: "provider bad data", err: provider(dhru.CategoryBadData), wantStatus: http.StatusBadGateway, wantCode: shared.CodeProviderBadData},
		{name: "provider contract", err: provider(dhru.CategoryContractMismatch), wantStatus: http.StatusBadGateway, wantCode: shared.CodeProviderBadData},
		{name: "provider auth", err: provider(dhru.CategoryAuthentication), wantStatus: http.StatusBadGateway, wantCode: shared.CodeProviderRejected},
		{name: "provider outage", err: provider(dhru.CategoryProviderOutage), wantStatus: http.StatusServiceUnavailable, wantCode: shared.CodeProviderUnavailable},
		{name: "provider timeout", err: provider(dhru.CategoryTimeout), wantStatus: http.StatusGatewayTimeout, wantCode: shared.CodeProviderTimeout},
		{name: "provider rate limited", err: provider(dhru.CategoryRateLimited), wantStatus: http.StatusTooManyRequests, wantCode: shared.CodeProviderRateLimited},
		{name: "persistence disabled", err: model.ErrPersistenceDisabled, wantStatus: http.StatusServiceUnavailable, wantCode: shared.CodePersistenceDisabled},
		{name: "cache unavailable", err: model.ErrCacheUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: shared.CodeCacheUnavailable},
		{name: "database", err: fmt.Errorf("%w: connection reset", model.ErrDatabaseQuery), wantStatus: http.StatusServiceUnavailable, wantCode: shared.CodeDatabaseUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantCode: shared.CodeProviderTimeout},
		{name: "unknown", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantCode: shared.CodeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, code, message := shared.ErrorStatus(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, code)
			require.NotEmpty(t, message)
		})
	}
}

func TestWriteDomainErrorIncludesClassification(t *testing.T) {
	t.Parallel()

	verr := &model.ValidationErrors{
		Details: identifier.Identifier{
			Raw:        "490154203237519",
			Kind:       identifier.KindIMEI,
			Normalized: "490154203237519",
			Reason:     identifier.ReasonIMEIChecksum,
		},
	}
	verr.Add("identifier", "IMEI check digit does not match", model.ValidationCodeInvalid)

	rec := httptest.NewRecorder()
	shared.WriteDomainError(rec, verr)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Details struct {
			Errors         []model.ValidationError `json:"errors"`
			Classification identifier.Identifier   `json:"classification"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Equal(t, shared.CodeInvalidIdentifier, body.Code)
	require.Len(t, body.Details.Errors, 1)
	require.Equal(t, "identifier", body.Details.Errors[0].Field)
	require.Equal(t, identifier.ReasonIMEIChecksum, body.Details.Classification.Reason)
}

func TestWriteDomainErrorOmitsDetailsForOtherErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	shared.WriteDomainError(rec, model.ErrPersistenceDisabled)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotContains(t, body, "details")
	require.Contains(t, body, "timestamp")
}
