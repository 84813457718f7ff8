package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	devicesTable      = "devices"
	queryHistoryTable = "query_history"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	deviceColumns = []string{
		"identifier", "kind", "serial_number", "model_description", "imei", "imei2",
		"meid", "warranty_status", "purchase_date", "purchase_country", "sim_lock_status",
		"locked_carrier", "icloud_lock", "demo_unit", "loaner_device", "refurbished_device",
		"replaced_device", "replacement_device", "raw", "created_at", "updated_at",
	}

	historyColumns = []string{
		"id", "identifier", "kind", "input_value", "service_id",
		"order_id", "price", "balance", "user_id", "created_at",
	}
)

type (
	// PoolOps is the subset of pgxpool.Pool the repository needs.
	PoolOps interface {
		Begin(ctx context.Context) (pgx.Tx, error)
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	RecordsRepository struct {
		pool    PoolOps
		scanner Scanner
		logger  logger.Logger
	}
)

func NewRecordsRepository(pool PoolOps, scanner Scanner, log logger.Logger) *RecordsRepository {
	return &RecordsRepository{
		pool:    pool,
		scanner: scanner,
		logger:  log.Component("records"),
	}
}

func (r *RecordsRepository) SaveLookup(ctx context.Context, record model.LookupRecord) (err error) {
	upsert, upsertArgs, err := buildDeviceUpsert(record.Snapshot)
	if err != nil {
		return err
	}

	insert, insertArgs, err := psql.Insert(queryHistoryTable).
		Columns(historyColumns...).
		Values(
			record.Query.ID,
			record.Query.Identifier,
			string(record.Query.Kind),
			record.Query.InputValue,
			record.Query.ServiceID,
			record.Query.OrderID,
			record.Query.Price,
			record.Query.Balance,
			record.Query.UserID,
			record.Query.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history insert: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseConnection, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Warn().Err(rbErr).Msg("rollback failed")
			}
		}
	}()

	if _, err = tx.Exec(ctx, upsert, upsertArgs...); err != nil {
		return fmt.Errorf("%w: upserting device: %v", model.ErrDatabaseQuery, err)
	}

	if _, err = tx.Exec(ctx, insert, insertArgs...); err != nil {
		return fmt.Errorf("%w: inserting history: %v", model.ErrDatabaseQuery, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: committing lookup: %v", model.ErrDatabaseQuery, err)
	}

	return nil
}

func (r *RecordsRepository) Stats(ctx context.Context) (*model.RecordStats, error) {
	query, args, err := psql.Select(
		"(SELECT COUNT(*) FROM "+queryHistoryTable+") AS total_records",
		"(SELECT COUNT(*) FROM "+devicesTable+") AS total_devices",
		"(SELECT MAX(created_at) FROM "+queryHistoryTable+") AS last_query_at",
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build stats query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var stats model.RecordStats
	if err := r.scanner.ScanOne(&stats, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return &stats, nil
}

func (r *RecordsRepository) ListHistory(ctx context.Context, identifier string, limit int) ([]model.QueryRecord, error) {
	query, args, err := psql.Select(historyColumns...).
		From(queryHistoryTable).
		Where(sq.Eq{"identifier": identifier}).
		OrderBy("created_at DESC").
		Limit(uint64(model.ClampHistoryLimit(limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	records := []model.QueryRecord{}
	if err := r.scanner.ScanAll(&records, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return records, nil
}

func (r *RecordsRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseConnection, err)
	}

	return nil
}

// buildDeviceUpsert keeps previously known attributes when the newest
// answer leaves them out, and never rewrites created_at.
func buildDeviceUpsert(snapshot model.DeviceSnapshot) (string, []any, error) {
	raw, err := json.Marshal(snapshot.Raw)
	if err != nil {
		return "", nil, fmt.Errorf("encoding raw device result: %w", err)
	}

	updates := make([]string, 0, len(deviceColumns))
	for _, column := range deviceColumns {
		switch column {
		case "identifier", "created_at":
			continue
		case "kind", "raw", "updated_at":
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
		default:
			updates = append(updates, fmt.Sprintf("%s = COALESCE(EXCLUDED.%s, %s.%s)", column, column, devicesTable, column))
		}
	}

	return psql.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(
			snapshot.Identifier,
			string(snapshot.Kind),
			snapshot.SerialNumber,
			snapshot.ModelDescription,
			snapshot.IMEI,
			snapshot.IMEI2,
			snapshot.MEID,
			snapshot.WarrantyStatus,
			snapshot.PurchaseDate,
			snapshot.PurchaseCountry,
			snapshot.SimLockStatus,
			snapshot.LockedCarrier,
			snapshot.ICloudLock,
			snapshot.DemoUnit,
			snapshot.LoanerDevice,
			snapshot.RefurbishedDevice,
			snapshot.ReplacedDevice,
			snapshot.ReplacementDevice,
			raw,
			snapshot.CreatedAt,
			snapshot.UpdatedAt,
		).
		Suffix("ON CONFLICT (identifier) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
}
