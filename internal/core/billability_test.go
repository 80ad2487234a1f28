package core

import (
	"testing"
	"time"
)

var testOpts = Options{
	ReferenceDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	GracePeriodDays: 30,
}

func TestEvaluateConsolidated(t *testing.T) {
	tests := []struct {
		name         string
		marker       any
		wantBillable bool
		wantStatus   DeviceStatus
	}{
		{"no marker", nil, true, StatusActive},
		{"blank marker", "   ", true, StatusActive},
		{"zero marker", float64(0), true, StatusActive},
		{"within grace", "2025-11-15", true, StatusRecentlyDeactivated},
		{"grace boundary", "2025-11-01", true, StatusRecentlyDeactivated}, // exactly 30 days
		{"future dated", "2026-01-10", true, StatusRecentlyDeactivated},
		{"beyond grace", "2025-09-01", false, ""},
		{"one day past boundary", "2025-10-31", false, ""},
		{"unparsable marker", "pendiente", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateConsolidated(tt.marker, testOpts)
			if got.Billable != tt.wantBillable {
				t.Fatalf("Billable = %v, want %v", got.Billable, tt.wantBillable)
			}
			if got.Billable && got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestEvaluateConsolidated_ZeroGrace(t *testing.T) {
	opts := Options{ReferenceDate: testOpts.ReferenceDate, GracePeriodDays: 0}

	if got := EvaluateConsolidated("2025-12-01", opts); !got.Billable {
		t.Error("deactivation on the reference date should still bill with zero grace")
	}
	if got := EvaluateConsolidated("2025-11-30", opts); got.Billable {
		t.Error("deactivation one day back should not bill with zero grace")
	}
}

func TestEvaluateLegacy_LeaseWialon(t *testing.T) {
	for _, platform := range []Platform{PlatformLease, PlatformWialon} {
		if !EvaluateLegacy(platform, NewRowIndex(map[string]any{"CUENTA": "Acme"})) {
			t.Errorf("%s: row without deactivation column should bill", platform)
		}
		if EvaluateLegacy(platform, NewRowIndex(map[string]any{"DESACTIVACION": "2025-01-01"})) {
			t.Errorf("%s: row with deactivation value should not bill", platform)
		}
		// The grace period never applies in legacy sheets, no matter how
		// recent the deactivation is.
		if EvaluateLegacy(platform, NewRowIndex(map[string]any{"FECHA DE BAJA": "2025-11-30"})) {
			t.Errorf("%s: fresh deactivation should still not bill", platform)
		}
	}
}

func TestEvaluateLegacy_Adas(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"activo", true},
		{"UNUSE", false},
		{"Baja", false},
		{"inactive", false},
		{"", true}, // missing status defaults to billable
	}

	for _, tt := range tests {
		row := map[string]any{"CUENTA": "Acme"}
		if tt.status != "" {
			row["ESTADO"] = tt.status
		}
		if got := EvaluateLegacy(PlatformAdas, NewRowIndex(row)); got != tt.want {
			t.Errorf("status %q: billable = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestEvaluateLegacy_Combustible(t *testing.T) {
	row := NewRowIndex(map[string]any{"DESACTIVACION": "2020-01-01", "ESTADO": "baja"})
	if !EvaluateLegacy(PlatformCombustible, row) {
		t.Error("combustible rows are always billable")
	}
}
