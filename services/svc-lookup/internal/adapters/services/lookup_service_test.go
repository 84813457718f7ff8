package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/services"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/mocks"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newLookupService(provider *mocks.FakeDeviceProvider, records ports.RecordsRepository) *services.LookupService {
	return services.NewLookupService(
		identifier.NewClassifier(),
		provider,
		records,
		logger.NewTestLogger(),
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func floatPtr(f float64) *float64 { return &f }

func TestQueryDeviceRejectsInvalidIdentifiersBeforeCallingProvider(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		input          string
		expectedReason string
		expectedCode   string
	}{
		{name: "empty", input: "   ", expectedReason: identifier.ReasonEmpty, expectedCode: model.ValidationCodeRequired},
		{name: "short IMEI", input: "49015420323751", expectedReason: identifier.ReasonIMEILength, expectedCode: model.ValidationCodeInvalid},
		{name: "bad check digit", input: "490154203237519", expectedReason: identifier.ReasonIMEIChecksum, expectedCode: model.ValidationCodeInvalid},
		{name: "garbage", input: "1ABC", expectedReason: identifier.ReasonUnrecognized, expectedCode: model.ValidationCodeInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := &mocks.FakeDeviceProvider{}
			records := &mocks.FakeRecordsRepository{}
			svc := newLookupService(provider, records)

			result, err := svc.QueryDevice(context.Background(), ports.QueryDeviceRequest{Input: tc.input})
			require.Nil(t, result)
			require.ErrorIs(t, err, model.ErrInvalidIdentifier)

			var verr *model.ValidationErrors
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.expectedCode, verr.Errors[0].Code)

			details, ok := verr.Details.(identifier.Identifier)
			require.True(t, ok)
			require.Equal(t, tc.expectedReason, details.Reason)

			require.Zero(t, provider.QueryDeviceCallCount())
			require.Zero(t, records.SaveLookupCallCount())
		})
	}
}

func TestQueryDevicePersistsNormalizedResult(t *testing.T) {
	t.Parallel()

	provider := &mocks.FakeDeviceProvider{}
	provider.QueryDeviceReturns(&model.ProviderResult{
		Result: map[string]any{
			"Model Description":       "IPHONE 13 PRO",
			"Serial  Number":          "F2LXK1ABHG7F",
			"Estimated Purchase Date": "2022-01-10",
		},
		Balance: floatPtr(41.2),
		Price:   floatPtr(0.08),
		OrderID: "987654",
	}, nil)

	records := &mocks.FakeRecordsRepository{}
	records.StatsReturns(&model.RecordStats{TotalRecords: 12}, nil)

	svc := newLookupService(provider, records)

	result, err := svc.QueryDevice(context.Background(), ports.QueryDeviceRequest{
		Input:  " 35-678901-234567-2 ",
		UserID: "operator-7",
	})
	require.NoError(t, err)

	_, query := provider.QueryDeviceArgsForCall(0)
	require.Equal(t, model.ProviderQuery{Identifier: "356789012345672", ServiceID: "30", Format: "beta"}, query)

	require.Equal(t, "IPHONE 13 PRO", result.Device["Model_Description"])
	require.Equal(t, "F2LXK1ABHG7F", result.Device["Serial_Number"])
	require.Equal(t, identifier.KindIMEI, result.Identifier.Kind)
	require.Equal(t, "987654", result.OrderID)
	require.True(t, result.Persisted)
	require.Empty(t, result.PersistError)
	require.NotNil(t, result.TotalRecords)
	require.EqualValues(t, 12, *result.TotalRecords)
	require.Equal(t, fixedNow, result.QueriedAt)

	require.Equal(t, 1, records.SaveLookupCallCount())
	_, saved := records.SaveLookupArgsForCall(0)
	require.Equal(t, "356789012345672", saved.Snapshot.Identifier)
	require.Equal(t, "IPHONE 13 PRO", *saved.Snapshot.ModelDescription)
	require.Equal(t, "2022-01-10", *saved.Snapshot.PurchaseDate)
	require.Equal(t, fixedNow, saved.Snapshot.UpdatedAt)
	require.Equal(t, " 35-678901-234567-2 ", saved.Query.InputValue)
	require.Equal(t, "operator-7", *saved.Query.UserID)
	require.Equal(t, "987654", *saved.Query.OrderID)
	require.NotEqual(t, uuid.Nil, saved.Query.ID)
}

func TestQueryDevicePersistenceIsBestEffort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name              string
		records           func() ports.RecordsRepository
		expectedPersisted bool
		expectedError     string
		expectTotal       bool
	}{
		{
			name: "save failure is reported, not returned",
			records: func() ports.RecordsRepository {
				records := &mocks.FakeRecordsRepository{}
				records.SaveLookupReturns(model.ErrDatabaseConnection)

				return records
			},
			expectedError: model.ErrDatabaseConnection.Error(),
		},
		{
			name: "stats failure still counts as persisted",
			records: func() ports.RecordsRepository {
				records := &mocks.FakeRecordsRepository{}
				records.StatsReturns(nil, model.ErrDatabaseQuery)

				return records
			},
			expectedPersisted: true,
		},
		{
			name:          "no repository configured",
			records:       func() ports.RecordsRepository { return nil },
			expectedError: model.ErrPersistenceDisabled.Error(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := &mocks.FakeDeviceProvider{}
			provider.QueryDeviceReturns(&model.ProviderResult{Result: map[string]any{"Model": "X"}}, nil)

			svc := newLookupService(provider, tc.records())

			result, err := svc.QueryDevice(context.Background(), ports.QueryDeviceRequest{Input: "F2LXK1ABHG7F"})
			require.NoError(t, err)
			require.Equal(t, identifier.KindSerial, result.Identifier.Kind)
			require.Equal(t, tc.expectedPersisted, result.Persisted)
			require.Equal(t, tc.expectedError, result.PersistError)
			require.Nil(t, result.TotalRecords)
		})
	}
}

func TestQueryDevicePersistsAfterClientCancels(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &mocks.FakeDeviceProvider{}
	provider.QueryDeviceCalls(func(context.Context, model.ProviderQuery) (*model.ProviderResult, error) {
		cancel()

		return &model.ProviderResult{Result: map[string]any{}}, nil
	})

	records := &mocks.FakeRecordsRepository{}
	records.SaveLookupCalls(func(ctx context.Context, _ model.LookupRecord) error {
		return ctx.Err()
	})
	records.StatsReturns(&model.RecordStats{TotalRecords: 1}, nil)

	svc := newLookupService(provider, records)

	result, err := svc.QueryDevice(ctx, ports.QueryDeviceRequest{Input: "490154203237518"})
	require.NoError(t, err)
	require.True(t, result.Persisted)
}

func TestQueryDeviceProviderFailure(t *testing.T) {
	t.Parallel()

	provider := &mocks.FakeDeviceProvider{}
	provider.QueryDeviceReturns(nil, model.ErrProviderUnavailable)

	records := &mocks.FakeRecordsRepository{}
	svc := newLookupService(provider, records)

	_, err := svc.QueryDevice(context.Background(), ports.QueryDeviceRequest{Input: "490154203237518", ServiceID: "12", Format: "json"})
	require.ErrorIs(t, err, model.ErrProviderUnavailable)
	require.Zero(t, records.SaveLookupCallCount())

	_, query := provider.QueryDeviceArgsForCall(0)
	require.Equal(t, "12", query.ServiceID)
	require.Equal(t, "json", query.Format)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	svc := newLookupService(&mocks.FakeDeviceProvider{}, nil)

	id, err := svc.Classify(context.Background(), "490154203237519")
	require.NoError(t, err)
	require.False(t, id.Valid)
	require.Equal(t, identifier.ReasonIMEIChecksum, id.Reason)

	_, err = svc.Classify(context.Background(), "")
	require.ErrorIs(t, err, model.ErrInvalidIdentifier)
}

func TestSearchHistory(t *testing.T) {
	t.Parallel()

	provider := &mocks.FakeDeviceProvider{}
	provider.HistoryReturns(&model.HistorySearch{
		Term:   "490154203237518",
		Format: "beta",
		Data:   []any{map[string]any{"Order  Id": "1"}},
	}, nil)

	svc := newLookupService(provider, nil)

	_, err := svc.SearchHistory(context.Background(), "  ", "")

	var validationErrs *model.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Equal(t, []model.ValidationError{
		{Field: "term", Message: "term is required", Code: model.ValidationCodeRequired},
	}, validationErrs.Errors)
	require.NotErrorIs(t, err, model.ErrInvalidIdentifier)
	require.Zero(t, provider.HistoryCallCount())

	search, err := svc.SearchHistory(context.Background(), " 490154203237518 ", "")
	require.NoError(t, err)

	_, term, format := provider.HistoryArgsForCall(0)
	require.Equal(t, "490154203237518", term)
	require.Equal(t, "beta", format)
	require.Equal(t, []any{map[string]any{"Order_Id": "1"}}, search.Data)
}

func TestRecordQueries(t *testing.T) {
	t.Parallel()

	t.Run("disabled persistence", func(t *testing.T) {
		t.Parallel()

		svc := newLookupService(&mocks.FakeDeviceProvider{}, nil)

		_, err := svc.RecordStats(context.Background())
		require.ErrorIs(t, err, model.ErrPersistenceDisabled)

		_, err = svc.DeviceHistory(context.Background(), "490154203237518", 10)
		require.ErrorIs(t, err, model.ErrPersistenceDisabled)
	})

	t.Run("device history normalizes and clamps", func(t *testing.T) {
		t.Parallel()

		records := &mocks.FakeRecordsRepository{}
		records.ListHistoryReturns([]model.QueryRecord{{Identifier: "F2LXK1ABHG7F"}}, nil)

		svc := newLookupService(&mocks.FakeDeviceProvider{}, records)

		history, err := svc.DeviceHistory(context.Background(), "f2lx-k1ab-hg7f", 1_000)
		require.NoError(t, err)
		require.Len(t, history, 1)

		_, id, limit := records.ListHistoryArgsForCall(0)
		require.Equal(t, "F2LXK1ABHG7F", id)
		require.Equal(t, model.MaxHistoryLimit, limit)
	})

	t.Run("stats pass through errors", func(t *testing.T) {
		t.Parallel()

		records := &mocks.FakeRecordsRepository{}
		records.StatsReturns(nil, errors.New("boom"))

		svc := newLookupService(&mocks.FakeDeviceProvider{}, records)

		_, err := svc.RecordStats(context.Background())
		require.EqualError(t, err, "boom")
	})
}
