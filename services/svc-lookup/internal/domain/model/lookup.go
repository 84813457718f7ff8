package model

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/architeacher/imei-lookup/pkg/identifier"
)

const (
	DefaultServiceID = "30"
	DefaultFormat    = "beta"

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type (
	// ProviderQuery is a single paid lookup sent to the device provider.
	ProviderQuery struct {
		Identifier string
		ServiceID  string
		Format     string
	}

	// ProviderResult is a successful provider answer. Result keeps the
	// provider's own field names, whitespace already folded to underscores.
	ProviderResult struct {
		Result  map[string]any
		Balance *float64
		Price   *float64
		OrderID string
	}

	ServiceCatalog struct {
		Services  any       `json:"services"`
		FetchedAt time.Time `json:"fetched_at"`
	}

	Balance struct {
		Amount    float64   `json:"balance"`
		CheckedAt time.Time `json:"checked_at"`
	}

	// HistorySearch is the provider's own order history for an IMEI or order id.
	HistorySearch struct {
		Term   string `json:"term"`
		Format string `json:"format"`
		Data   any    `json:"data"`
	}

	// DeviceSnapshot is the latest known state of a device, one row per identifier.
	DeviceSnapshot struct {
		Identifier        string          `db:"identifier"`
		Kind              identifier.Kind `db:"kind"`
		SerialNumber      *string         `db:"serial_number"`
		ModelDescription  *string         `db:"model_description"`
		IMEI              *string         `db:"imei"`
		IMEI2             *string         `db:"imei2"`
		MEID              *string         `db:"meid"`
		WarrantyStatus    *string         `db:"warranty_status"`
		PurchaseDate      *string         `db:"purchase_date"`
		PurchaseCountry   *string         `db:"purchase_country"`
		SimLockStatus     *string         `db:"sim_lock_status"`
		LockedCarrier     *string         `db:"locked_carrier"`
		ICloudLock        *string         `db:"icloud_lock"`
		DemoUnit          *string         `db:"demo_unit"`
		LoanerDevice      *string         `db:"loaner_device"`
		RefurbishedDevice *string         `db:"refurbished_device"`
		ReplacedDevice    *string         `db:"replaced_device"`
		ReplacementDevice *string         `db:"replacement_device"`
		Raw               map[string]any  `db:"raw"`
		CreatedAt         time.Time       `db:"created_at"`
		UpdatedAt         time.Time       `db:"updated_at"`
	}

	// QueryRecord is one billed lookup, appended for every successful query.
	QueryRecord struct {
		ID         openapi_types.UUID `db:"id" json:"id"`
		Identifier string             `db:"identifier" json:"identifier"`
		Kind       identifier.Kind    `db:"kind" json:"kind"`
		InputValue string             `db:"input_value" json:"input_value"`
		ServiceID  string             `db:"service_id" json:"service_id"`
		OrderID    *string            `db:"order_id" json:"order_id,omitempty"`
		Price      *float64           `db:"price" json:"price,omitempty"`
		Balance    *float64           `db:"balance" json:"balance,omitempty"`
		UserID     *string            `db:"user_id" json:"user_id,omitempty"`
		CreatedAt  time.Time          `db:"created_at" json:"created_at"`
	}

	// LookupRecord is what gets persisted after a successful query.
	LookupRecord struct {
		Snapshot DeviceSnapshot
		Query    QueryRecord
	}

	RecordStats struct {
		TotalRecords int64      `db:"total_records" json:"total_records"`
		TotalDevices int64      `db:"total_devices" json:"total_devices"`
		LastQueryAt  *time.Time `db:"last_query_at" json:"last_query_at,omitempty"`
	}

	// LookupResult is returned to the caller of a device query.
	LookupResult struct {
		Identifier   identifier.Identifier `json:"identifier"`
		ServiceID    string                `json:"service_id"`
		Device       map[string]any        `json:"device"`
		Balance      *float64              `json:"balance,omitempty"`
		Price        *float64              `json:"price,omitempty"`
		OrderID      string                `json:"order_id,omitempty"`
		Persisted    bool                  `json:"persisted"`
		PersistError string                `json:"persist_error,omitempty"`
		TotalRecords *int64                `json:"total_records,omitempty"`
		QueriedAt    time.Time             `json:"queried_at"`
	}
)

// ClampHistoryLimit applies the default and ceiling for history listings.
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
