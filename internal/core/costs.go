package core

import (
	"strings"

	"github.com/satech-mx/devicebilling/internal/workbook"
)

// selectCostSheet picks the costs sheet by name, falling back to the
// workbook's first sheet when no name matches.
func selectCostSheet(wb *workbook.Workbook) (workbook.Sheet, bool) {
	for _, s := range wb.Sheets {
		n := NormalizeHeader(s.Name)
		if strings.Contains(n, "COSTOS") || strings.Contains(n, "SATECH") {
			return s, true
		}
	}
	if len(wb.Sheets) > 0 {
		return wb.Sheets[0], true
	}
	return workbook.Sheet{}, false
}

// mergeCosts overlays pricing metadata onto the aggregated records. Accounts
// seen only here still get a record, so billing-only customers show up in the
// report with zero devices. When one account appears on several rows the last
// row wins, field by field.
func (a *aggregation) mergeCosts(sheet workbook.Sheet) {
	for _, row := range sheet.Rows {
		idx := NewRowIndex(row)

		accountRaw, _ := idx.Lookup(FieldAccountCost)
		account := cellString(accountRaw)
		if strings.TrimSpace(account) == "" {
			continue
		}

		rec := a.record(account)
		cost, _ := idx.Lookup(FieldUnitCost)
		rec.Billing.UnitPrice = ParseCurrency(cost)
		rec.Billing.BillingType = idx.LookupString(FieldBillingType, "N/A")
		rec.Billing.Notes = idx.LookupString(FieldNotes, "")
		rec.Billing.CommercialName = idx.LookupString(FieldCommercialName, "")
	}
}
