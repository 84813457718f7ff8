package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/architeacher/imei-lookup/pkg/identifier"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Provider result keys after NormalizeKeys.
const (
	FieldSerialNumber          = "Serial_Number"
	FieldModelDescription      = "Model_Description"
	FieldIMEI                  = "IMEI"
	FieldIMEI2                 = "IMEI2"
	FieldMEID                  = "MEID"
	FieldWarrantyStatus        = "Warranty_Status"
	FieldEstimatedPurchaseDate = "Estimated_Purchase_Date"
	FieldPurchaseCountry       = "Purchase_Country"
	FieldSimLockStatus         = "Sim-Lock_Status"
	FieldLockedCarrier         = "Locked_Carrier"
	FieldICloudLock            = "iCloud_Lock"
	FieldDemoUnit              = "Demo_Unit"
	FieldLoanerDevice          = "Loaner_Device"
	FieldRefurbishedDevice     = "Refurbished_Device"
	FieldReplacedDevice        = "Replaced_Device"
	FieldReplacementDevice     = "Replacement_Device"
)

// NormalizeKeys trims map keys and folds inner whitespace runs into a
// single underscore, recursing through nested maps and slices. Values are
// left untouched.
func NormalizeKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[NormalizeKey(key)] = NormalizeKeys(nested)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, nested := range v {
			out[i] = NormalizeKeys(nested)
		}

		return out
	default:
		return value
	}
}

func NormalizeKey(key string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(key), "_")
}

// NormalizeResult is NormalizeKeys for a decoded JSON object.
func NormalizeResult(result map[string]any) map[string]any {
	if result == nil {
		return map[string]any{}
	}

	normalized, _ := NormalizeKeys(result).(map[string]any)

	return normalized
}

// NewDeviceSnapshot maps a normalized provider result onto the stored columns.
func NewDeviceSnapshot(id string, kind identifier.Kind, result map[string]any) DeviceSnapshot {
	return DeviceSnapshot{
		Identifier:        id,
		Kind:              kind,
		SerialNumber:      stringField(result, FieldSerialNumber),
		ModelDescription:  stringField(result, FieldModelDescription),
		IMEI:              stringField(result, FieldIMEI),
		IMEI2:             stringField(result, FieldIMEI2),
		MEID:              stringField(result, FieldMEID),
		WarrantyStatus:    stringField(result, FieldWarrantyStatus),
		PurchaseDate:      stringField(result, FieldEstimatedPurchaseDate),
		PurchaseCountry:   stringField(result, FieldPurchaseCountry),
		SimLockStatus:     stringField(result, FieldSimLockStatus),
		LockedCarrier:     stringField(result, FieldLockedCarrier),
		ICloudLock:        stringField(result, FieldICloudLock),
		DemoUnit:          stringField(result, FieldDemoUnit),
		LoanerDevice:      stringField(result, FieldLoanerDevice),
		RefurbishedDevice: stringField(result, FieldRefurbishedDevice),
		ReplacedDevice:    stringField(result, FieldReplacedDevice),
		ReplacementDevice: stringField(result, FieldReplacementDevice),
		Raw:               result,
	}
}

// stringField renders scalar values as text; missing, empty and nested
// values yield nil.
func stringField(result map[string]any, key string) *string {
	value, ok := result[key]
	if !ok || value == nil {
		return nil
	}

	var s string

	switch v := value.(type) {
	case string:
		s = strings.TrimSpace(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	case map[string]any, []any:
		return nil
	default:
		s = fmt.Sprint(v)
	}

	if s == "" {
		return nil
	}

	return &s
}
