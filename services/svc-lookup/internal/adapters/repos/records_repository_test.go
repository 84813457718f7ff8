package repos_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/repos"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

const (
	upsertPattern        = `INSERT INTO devices \(identifier,kind,serial_number,.*\) VALUES .* ON CONFLICT \(identifier\) DO UPDATE SET kind = EXCLUDED\.kind, serial_number = COALESCE\(EXCLUDED\.serial_number, devices\.serial_number\)`
	historyInsertPattern = `INSERT INTO query_history \(id,identifier,kind,input_value,service_id,order_id,price,balance,user_id,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10\)`
)

func runRepoTest(
	t *testing.T,
	setupMock func(pgxmock.PgxPoolIface),
	testFn func(*testing.T, *repos.RecordsRepository, *bytes.Buffer),
) {
	t.Helper()
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	setupMock(mock)

	logBuffer := &bytes.Buffer{}
	repo := repos.NewRecordsRepository(mock, repos.NewPgxScanner(), logger.NewBufferedTestLogger(logBuffer))
	testFn(t, repo, logBuffer)

	require.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func sampleRecord() model.LookupRecord {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	result := model.NormalizeResult(map[string]any{
		"Model Description": "IPHONE 13 PRO 256GB",
		"IMEI":              "356789012345672",
		"Serial Number":     "F2LXK1ABHG7F",
	})

	snapshot := model.NewDeviceSnapshot("356789012345672", identifier.KindIMEI, result)
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	return model.LookupRecord{
		Snapshot: snapshot,
		Query: model.QueryRecord{
			ID:         uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
			Identifier: "356789012345672",
			Kind:       identifier.KindIMEI,
			InputValue: "35-678901-234567-2",
			ServiceID:  "30",
			OrderID:    strPtr("987654"),
			Price:      floatPtr(0.08),
			Balance:    floatPtr(41.2),
			CreatedAt:  now,
		},
	}
}

func historyArgs(q model.QueryRecord) []any {
	return []any{
		q.ID, q.Identifier, string(q.Kind), q.InputValue, q.ServiceID,
		q.OrderID, q.Price, q.Balance, q.UserID, q.CreatedAt,
	}
}

func TestRecordsRepository_SaveLookup(t *testing.T) {
	t.Parallel()

	record := sampleRecord()
	raw, err := json.Marshal(record.Snapshot.Raw)
	require.NoError(t, err)

	upsertArgs := []any{
		record.Snapshot.Identifier, "imei",
		record.Snapshot.SerialNumber, record.Snapshot.ModelDescription, record.Snapshot.IMEI,
		pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		raw, record.Snapshot.CreatedAt, record.Snapshot.UpdatedAt,
	}

	cases := []struct {
		name        string
		setupMock   func(mock pgxmock.PgxPoolIface)
		expectedErr error
		expectedLog string
	}{
		{
			name: "upserts device and appends history in one transaction",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertPattern).
					WithArgs(upsertArgs...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(historyInsertPattern).
					WithArgs(historyArgs(record.Query)...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "history failure rolls back the upsert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertPattern).
					WithArgs(upsertArgs...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(historyInsertPattern).
					WithArgs(historyArgs(record.Query)...).
					WillReturnError(errors.New("relation \"query_history\" does not exist"))
				mock.ExpectRollback()
			},
			expectedErr: model.ErrDatabaseQuery,
		},
		{
			name: "failed upsert skips the history insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertPattern).
					WithArgs(upsertArgs...).
					WillReturnError(errors.New("deadlock detected"))
				mock.ExpectRollback().WillReturnError(errors.New("conn closed"))
			},
			expectedErr: model.ErrDatabaseQuery,
			expectedLog: "rollback failed",
		},
		{
			name: "begin failure is a connection error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			expectedErr: model.ErrDatabaseConnection,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runRepoTest(t, tc.setupMock, func(t *testing.T, repo *repos.RecordsRepository, logs *bytes.Buffer) {
				err := repo.SaveLookup(context.Background(), record)

				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)
				} else {
					require.NoError(t, err)
				}

				if tc.expectedLog != "" {
					require.True(t, strings.Contains(logs.String(), tc.expectedLog), logs.String())
				}
			})
		})
	}
}

func TestRecordsRepository_Stats(t *testing.T) {
	t.Parallel()

	statsQuery := regexp.QuoteMeta(
		`SELECT (SELECT COUNT(*) FROM query_history) AS total_records, (SELECT COUNT(*) FROM devices) AS total_devices, (SELECT MAX(created_at) FROM query_history) AS last_query_at`,
	)
	lastQuery := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name        string
		setupMock   func(mock pgxmock.PgxPoolIface)
		expected    *model.RecordStats
		expectedErr error
	}{
		{
			name: "returns counts and last query time",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"total_records", "total_devices", "last_query_at"}).
					AddRow(int64(42), int64(17), &lastQuery)
				mock.ExpectQuery(statsQuery).WillReturnRows(rows)
			},
			expected: &model.RecordStats{TotalRecords: 42, TotalDevices: 17, LastQueryAt: &lastQuery},
		},
		{
			name: "empty tables",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"total_records", "total_devices", "last_query_at"}).
					AddRow(int64(0), int64(0), (*time.Time)(nil))
				mock.ExpectQuery(statsQuery).WillReturnRows(rows)
			},
			expected: &model.RecordStats{},
		},
		{
			name: "query failure",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(statsQuery).WillReturnError(errors.New("timeout"))
			},
			expectedErr: model.ErrDatabaseQuery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runRepoTest(t, tc.setupMock, func(t *testing.T, repo *repos.RecordsRepository, _ *bytes.Buffer) {
				stats, err := repo.Stats(context.Background())

				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)

					return
				}

				require.NoError(t, err)
				require.Equal(t, tc.expected, stats)
			})
		})
	}
}

func TestRecordsRepository_ListHistory(t *testing.T) {
	t.Parallel()

	columns := []string{"id", "identifier", "kind", "input_value", "service_id", "order_id", "price", "balance", "user_id", "created_at"}
	selectPrefix := `SELECT id, identifier, kind, input_value, service_id, order_id, price, balance, user_id, created_at FROM query_history WHERE identifier = $1 ORDER BY created_at DESC LIMIT `
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	cases := []struct {
		name        string
		limit       int
		setupMock   func(mock pgxmock.PgxPoolIface)
		expectedLen int
		expectedErr error
	}{
		{
			name:  "returns newest first with default limit",
			limit: 0,
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).
					AddRow(id, "490154203237518", identifier.KindIMEI, "490154203237518", "30",
						strPtr("1"), floatPtr(0.08), floatPtr(10.0), (*string)(nil), createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(selectPrefix + "50")).
					WithArgs("490154203237518").
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:  "limit is capped",
			limit: 10_000,
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectPrefix + "200")).
					WithArgs("490154203237518").
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expectedLen: 0,
		},
		{
			name:  "query failure",
			limit: 5,
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectPrefix + "5")).
					WithArgs("490154203237518").
					WillReturnError(errors.New("boom"))
			},
			expectedErr: model.ErrDatabaseQuery,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runRepoTest(t, tc.setupMock, func(t *testing.T, repo *repos.RecordsRepository, _ *bytes.Buffer) {
				records, err := repo.ListHistory(context.Background(), "490154203237518", tc.limit)

				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)

					return
				}

				require.NoError(t, err)
				require.NotNil(t, records)
				require.Len(t, records, tc.expectedLen)

				if tc.expectedLen > 0 {
					require.Equal(t, id, records[0].ID)
					require.Equal(t, identifier.KindIMEI, records[0].Kind)
					require.Equal(t, "1", *records[0].OrderID)
					require.Nil(t, records[0].UserID)
				}
			})
		})
	}
}

func TestRecordsRepository_Ping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		pingErr     error
		expectedErr error
	}{
		{name: "reachable"},
		{name: "unreachable", pingErr: errors.New("dial tcp: refused"), expectedErr: model.ErrDatabaseConnection},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectPing().WillReturnError(tc.pingErr)

			repo := repos.NewRecordsRepository(mock, repos.NewPgxScanner(), logger.NewTestLogger())

			err = repo.Ping(context.Background())
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
