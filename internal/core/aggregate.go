package core

import (
	"strings"

	"github.com/satech-mx/devicebilling/internal/workbook"
)

// aggregation owns the per-account mapping for one reconciliation pass. Each
// Reconcile call builds its own, so concurrent passes never share records.
// Keys remember their first-discovered order; the final sort is stable on
// ties, so that order is what reproduces identical reports across runs.
type aggregation struct {
	records map[string]*ConsolidatedRecord
	order   []string
}

func newAggregation() *aggregation {
	return &aggregation{records: make(map[string]*ConsolidatedRecord)}
}

// record returns the account's record, creating an empty one on first
// reference from either input file.
func (a *aggregation) record(rawName string) *ConsolidatedRecord {
	key := NormalizeAccountKey(rawName)
	rec, ok := a.records[key]
	if !ok {
		rec = newRecord(key, rawName)
		a.records[key] = rec
		a.order = append(a.order, key)
	}
	return rec
}

// aggregateSheet routes one platform sheet through the layout-specific pass.
func (a *aggregation) aggregateSheet(sheet workbook.Sheet, opts Options) {
	if len(sheet.Rows) == 0 {
		return
	}

	first := NewRowIndex(sheet.Rows[0])
	if DetectFormat(first) == FormatConsolidated {
		a.aggregateConsolidated(sheet.Rows, opts)
		return
	}

	platform, ok := PlatformFromSheetName(sheet.Name)
	if !ok {
		return // not a tracking-platform sheet
	}
	a.aggregateLegacy(platform, sheet.Rows)
}

func (a *aggregation) aggregateConsolidated(rows []workbook.Row, opts Options) {
	for _, row := range rows {
		idx := NewRowIndex(row)

		marker, _ := idx.Lookup(FieldDeactivationConsolidated)
		bill := EvaluateConsolidated(marker, opts)
		if !bill.Billable {
			continue
		}

		accountRaw, _ := idx.Lookup(FieldAccountConsolidated)
		account := cellString(accountRaw)
		origin := idx.LookupString(FieldOrigin, "")
		if strings.TrimSpace(account) == "" || origin == "" {
			continue // row cannot be attributed, skip silently
		}

		rec := a.record(account)
		rec.Counts.TotalActive++
		if bill.Status == StatusRecentlyDeactivated {
			rec.Counts.RecentlyDeactivated++
		}
		rec.Counts.add(PlatformFromOrigin(origin))

		deactivation := ""
		if bill.HasDate {
			deactivation = bill.DeactivationDate.Format("2006-01-02")
		}
		rec.Devices = append(rec.Devices, DeviceDetail{
			Name:             idx.LookupString(FieldDeviceName, "S/N"),
			IMEI:             idx.LookupString(FieldIMEIConsolidated, "-"),
			DeviceType:       idx.LookupString(FieldDeviceTypeConsolidated, "-"),
			DeactivationDate: deactivation,
			Status:           bill.Status,
			Platform:         origin,
		})
	}
}

func (a *aggregation) aggregateLegacy(platform Platform, rows []workbook.Row) {
	for _, row := range rows {
		idx := NewRowIndex(row)

		if !EvaluateLegacy(platform, idx) {
			continue
		}

		accountRaw, _ := idx.Lookup(FieldAccountLegacy)
		account := cellString(accountRaw)
		if strings.TrimSpace(account) == "" {
			continue
		}

		rec := a.record(account)
		rec.Counts.TotalActive++
		rec.Counts.add(platform)

		rec.Devices = append(rec.Devices, DeviceDetail{
			Name:       idx.LookupString(FieldDeviceName, "S/N"),
			IMEI:       idx.LookupString(FieldIMEILegacy, "-"),
			DeviceType: idx.LookupString(FieldDeviceTypeLegacy, "-"),
			Status:     StatusActive,
			Platform:   strings.ToUpper(string(platform)),
		})
	}
}
