// Package export turns a finished reconciliation into the multi-sheet
// billing report handed to accounting. Billability is taken as-is from the
// consolidated records; nothing here re-evaluates the billing rules.
package export

import (
	"github.com/samber/lo"

	"github.com/satech-mx/devicebilling/internal/core"
	"github.com/satech-mx/devicebilling/internal/workbook"
)

const (
	sheetSummary    = "Resumen Facturación"
	sheetRecent     = "Detalle Bajas Cobrables"
	sheetAllDevices = "Detalle Global Activos"

	// recentBillingNote explains, on every recent-deactivation row, why a
	// deactivated device still shows up on the invoice.
	recentBillingNote = "COBRABLE (Regla de días)"
)

var summaryColumns = []string{
	"Cuenta",
	"Nombre Comercial",
	"Total Cobrable",
	"Activos Reales",
	"Bajas Recientes (Cobrables)",
	"Wialon",
	"Lease",
	"ADAS",
	"Combustible",
	"Costo Unitario",
	"Tipo Cobro",
	"Total a Cobrar",
	"Observaciones",
}

var recentColumns = []string{
	"Cuenta", "Nombre Unidad", "IMEI", "Tipo Dispositivo",
	"Fecha Baja", "Plataforma", "Estatus Cobro",
}

var allDeviceColumns = []string{
	"Cuenta", "Nombre Unidad", "IMEI", "Tipo Dispositivo",
	"Fecha Baja", "Plataforma", "Estatus",
}

// Report builds the export sheets from the engine's output: the per-account
// summary, the recently-deactivated detail (omitted when empty, matching the
// reports analysts are used to), and the global device detail.
func Report(records []core.ConsolidatedRecord) []workbook.SheetData {
	sheets := []workbook.SheetData{summarySheet(records)}

	recent := workbook.SheetData{
		Name:    sheetRecent,
		Columns: recentColumns,
		Rows: deviceRows(records,
			func(d core.DeviceDetail) bool { return d.Status == core.StatusRecentlyDeactivated },
			func(core.DeviceDetail) any { return recentBillingNote }),
	}
	if len(recent.Rows) > 0 {
		sheets = append(sheets, recent)
	}

	sheets = append(sheets, workbook.SheetData{
		Name:    sheetAllDevices,
		Columns: allDeviceColumns,
		Rows: deviceRows(records,
			func(core.DeviceDetail) bool { return true },
			func(d core.DeviceDetail) any { return string(d.Status) }),
	})
	return sheets
}

// WriteReport renders the report workbook to path.
func WriteReport(path string, records []core.ConsolidatedRecord) error {
	return workbook.Write(path, Report(records))
}

func summarySheet(records []core.ConsolidatedRecord) workbook.SheetData {
	rows := lo.Map(records, func(r core.ConsolidatedRecord, _ int) []any {
		return []any{
			r.OriginalName,
			r.Billing.CommercialName,
			r.Counts.TotalActive,
			r.Counts.TotalActive - r.Counts.RecentlyDeactivated,
			r.Counts.RecentlyDeactivated,
			r.Counts.Wialon,
			r.Counts.Lease,
			r.Counts.Adas,
			r.Counts.Combustible,
			r.Billing.UnitPrice.InexactFloat64(),
			r.Billing.BillingType,
			r.CalculatedTotal.InexactFloat64(),
			r.Billing.Notes,
		}
	})
	return workbook.SheetData{Name: sheetSummary, Columns: summaryColumns, Rows: rows}
}

func deviceRows(records []core.ConsolidatedRecord, keep func(core.DeviceDetail) bool, status func(core.DeviceDetail) any) [][]any {
	return lo.FlatMap(records, func(r core.ConsolidatedRecord, _ int) [][]any {
		kept := lo.Filter(r.Devices, func(d core.DeviceDetail, _ int) bool { return keep(d) })
		return lo.Map(kept, func(d core.DeviceDetail, _ int) []any {
			return []any{
				r.OriginalName,
				d.Name,
				d.IMEI,
				d.DeviceType,
				d.DeactivationDate,
				d.Platform,
				status(d),
			}
		})
	})
}
