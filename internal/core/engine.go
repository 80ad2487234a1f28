package core

import (
	"sort"

	"github.com/satech-mx/devicebilling/internal/workbook"
	"github.com/shopspring/decimal"
)

// Reconcile runs the full batch: aggregate every sheet of the platforms
// workbook (detecting each sheet's layout independently), overlay the costs
// sheet, then finalize totals and discrepancy flags. The result is sorted by
// billable total descending; ties keep first-discovered order.
func Reconcile(platforms, costs *workbook.Workbook, opts Options) []ConsolidatedRecord {
	agg := newAggregation()

	for _, sheet := range platforms.Sheets {
		agg.aggregateSheet(sheet, opts)
	}

	if sheet, ok := selectCostSheet(costs); ok {
		agg.mergeCosts(sheet)
	}

	out := make([]ConsolidatedRecord, 0, len(agg.order))
	for _, key := range agg.order {
		rec := agg.records[key]
		rec.CalculatedTotal = decimal.NewFromInt(int64(rec.Counts.TotalActive)).Mul(rec.Billing.UnitPrice)
		rec.HasDiscrepancy = (rec.Counts.TotalActive > 0 && rec.Billing.UnitPrice.IsZero()) ||
			(rec.Counts.TotalActive == 0 && rec.Billing.UnitPrice.IsPositive())
		out = append(out, *rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CalculatedTotal.GreaterThan(out[j].CalculatedTotal)
	})
	return out
}
