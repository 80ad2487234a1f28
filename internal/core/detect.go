package core

import "strings"

// SheetFormat tags the two platform-sheet layouts.
type SheetFormat int

const (
	// FormatLegacy is the one-sheet-per-platform layout; the platform is
	// implied by the sheet name.
	FormatLegacy SheetFormat = iota
	// FormatConsolidated is the single-sheet layout with an explicit origin
	// column on every row.
	FormatConsolidated
)

// DetectFormat sniffs the first data row of a platform sheet. Presence of
// both a consolidated account column and an origin column marks the sheet as
// consolidated; anything else falls back to legacy. Detection runs once per
// sheet, so one workbook may mix both layouts.
func DetectFormat(first RowIndex) SheetFormat {
	_, hasAccount := first.Lookup(FieldAccountDetect)
	_, hasOrigin := first.Lookup(FieldOrigin)
	if hasAccount && hasOrigin {
		return FormatConsolidated
	}
	return FormatLegacy
}

// PlatformFromSheetName maps a legacy sheet name to its platform by
// case-insensitive substring. Sheets matching none of the four known names
// carry no billable devices and are skipped.
func PlatformFromSheetName(name string) (Platform, bool) {
	n := NormalizeHeader(name)
	switch {
	case strings.Contains(n, "LEASE"):
		return PlatformLease, true
	case strings.Contains(n, "WIALON"):
		return PlatformWialon, true
	case strings.Contains(n, "ADAS"):
		return PlatformAdas, true
	case strings.Contains(n, "COMBUSTIBLE"):
		return PlatformCombustible, true
	}
	return "", false
}

// PlatformFromOrigin buckets a consolidated row's origin value. Lease is the
// default bucket for origins that match no other platform.
func PlatformFromOrigin(origin string) Platform {
	o := NormalizeHeader(origin)
	switch {
	case strings.Contains(o, "WIALON"):
		return PlatformWialon
	case strings.Contains(o, "ADAS"):
		return PlatformAdas
	case strings.Contains(o, "COMBUSTIBLE"):
		return PlatformCombustible
	}
	return PlatformLease
}
