package export

import (
	"testing"

	"github.com/satech-mx/devicebilling/internal/core"
	"github.com/shopspring/decimal"
)

func sampleRecords() []core.ConsolidatedRecord {
	return []core.ConsolidatedRecord{
		{
			Key:          "ACME",
			OriginalName: "Acme Corp",
			Counts:       core.PlatformCounts{Wialon: 2, TotalActive: 2, RecentlyDeactivated: 1},
			Billing: core.CostData{
				UnitPrice:      decimal.NewFromInt(100),
				BillingType:    "Mensual",
				CommercialName: "Acme S.A.",
			},
			CalculatedTotal: decimal.NewFromInt(200),
			Devices: []core.DeviceDetail{
				{Name: "Unidad 1", IMEI: "860000000000001", DeviceType: "GPS", Status: core.StatusActive, Platform: "WIALON"},
				{Name: "Unidad 2", IMEI: "-", DeviceType: "GPS", DeactivationDate: "2025-11-15", Status: core.StatusRecentlyDeactivated, Platform: "WIALON"},
			},
		},
	}
}

func TestReport_SheetComposition(t *testing.T) {
	sheets := Report(sampleRecords())

	if len(sheets) != 3 {
		t.Fatalf("sheets = %d, want 3", len(sheets))
	}
	wantNames := []string{"Resumen Facturación", "Detalle Bajas Cobrables", "Detalle Global Activos"}
	for i, want := range wantNames {
		if sheets[i].Name != want {
			t.Errorf("sheets[%d] = %q, want %q", i, sheets[i].Name, want)
		}
	}
}

func TestReport_SummaryRow(t *testing.T) {
	sheets := Report(sampleRecords())

	summary := sheets[0]
	if len(summary.Rows) != 1 {
		t.Fatalf("summary rows = %d, want 1", len(summary.Rows))
	}
	row := summary.Rows[0]
	if row[0] != "Acme Corp" {
		t.Errorf("Cuenta = %v", row[0])
	}
	if row[2] != 2 { // Total Cobrable
		t.Errorf("Total Cobrable = %v, want 2", row[2])
	}
	if row[3] != 1 { // Activos Reales = total - recent
		t.Errorf("Activos Reales = %v, want 1", row[3])
	}
	if row[11] != float64(200) { // Total a Cobrar
		t.Errorf("Total a Cobrar = %v, want 200", row[11])
	}
}

func TestReport_RecentSheetRows(t *testing.T) {
	sheets := Report(sampleRecords())

	recent := sheets[1]
	if len(recent.Rows) != 1 {
		t.Fatalf("recent rows = %d, want only the RECENTLY_DEACTIVATED device", len(recent.Rows))
	}
	row := recent.Rows[0]
	if row[1] != "Unidad 2" || row[4] != "2025-11-15" {
		t.Errorf("recent row = %v", row)
	}
	if row[6] != "COBRABLE (Regla de días)" {
		t.Errorf("Estatus Cobro = %v", row[6])
	}
}

func TestReport_RecentSheetOmittedWhenEmpty(t *testing.T) {
	records := sampleRecords()
	records[0].Devices = records[0].Devices[:1] // only the ACTIVE device
	records[0].Counts.RecentlyDeactivated = 0

	sheets := Report(records)

	if len(sheets) != 2 {
		t.Fatalf("sheets = %d, want 2 when there are no recent deactivations", len(sheets))
	}
	if sheets[1].Name != "Detalle Global Activos" {
		t.Errorf("sheets[1] = %q", sheets[1].Name)
	}
}

func TestReport_GlobalDetailCoversAllDevices(t *testing.T) {
	sheets := Report(sampleRecords())

	global := sheets[2]
	if len(global.Rows) != 2 {
		t.Fatalf("global rows = %d, want every device regardless of status", len(global.Rows))
	}
	if global.Rows[0][6] != "ACTIVE" || global.Rows[1][6] != "RECENTLY_DEACTIVATED" {
		t.Errorf("statuses = %v, %v", global.Rows[0][6], global.Rows[1][6])
	}
}
