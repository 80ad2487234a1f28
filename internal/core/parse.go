package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// excelEpochOffsetDays is the Excel serial of 1970-01-01; serials count days
// since 1899-12-30.
const excelEpochOffsetDays = 25569

var currencyStripper = strings.NewReplacer("$", "", ",", "", " ", "", "\t", "")

// ParseCurrency coerces a cell value into a monetary amount. Numeric cells
// pass through; strings are stripped of currency symbols, thousands
// separators and whitespace first. Anything unparsable is zero: one bad
// price cell must never abort the batch.
func ParseCurrency(v any) decimal.Decimal {
	switch val := v.(type) {
	case decimal.Decimal:
		return val
	case float64:
		return decimal.NewFromFloat(val)
	case float32:
		return decimal.NewFromFloat32(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case string:
		clean := currencyStripper.Replace(strings.TrimSpace(val))
		d, err := decimal.NewFromString(clean)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"2/1/2006",
	"02-01-2006",
}

// ParseDate coerces a cell value into a calendar date. Numeric cells are
// Excel date serials. Strings are tried against the known layouts, then as a
// serial rendered as text, which is how streamed readers hand back
// unformatted date cells. ok is false when the cell holds no usable date;
// callers must treat that as "no date", not as an epoch default.
func ParseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case float64:
		if val == 0 {
			return time.Time{}, false
		}
		return fromSerial(val), true
	case int:
		if val == 0 {
			return time.Time{}, false
		}
		return fromSerial(float64(val)), true
	case string:
		clean := strings.TrimSpace(val)
		if clean == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, clean); err == nil {
				return t, true
			}
		}
		if serial, err := strconv.ParseFloat(clean, 64); err == nil && serial > 0 {
			return fromSerial(serial), true
		}
	}
	return time.Time{}, false
}

func fromSerial(serial float64) time.Time {
	secs := math.Round((serial - excelEpochOffsetDays) * 86400)
	return time.Unix(int64(secs), 0).UTC()
}

// cellString renders an arbitrary cell value as text. Floats drop trailing
// zeros so a numeric IMEI does not grow a ".000000" suffix.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}

// isBlank reports whether a cell counts as "no value" for the billing rules.
// Numeric zero is blank to match how the legacy exports encode empty cells.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case float64:
		return val == 0
	case float32:
		return val == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	}
	return false
}
