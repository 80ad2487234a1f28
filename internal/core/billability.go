package core

import (
	"strings"
	"time"
)

// Billability is the outcome of the billing rule for one device row.
type Billability struct {
	Billable bool
	Status   DeviceStatus
	// DeactivationDate is set when the row carried a parseable date.
	DeactivationDate time.Time
	HasDate          bool
}

// EvaluateConsolidated applies the grace-period rule to a consolidated-format
// row's deactivation marker. A blank marker means the device is simply
// active. A marker that parses is billable while the deactivation is in the
// future or at most GracePeriodDays behind the reference date. A marker that
// does not parse, or a deactivation older than the grace window, drops the
// device from the billing run entirely.
func EvaluateConsolidated(marker any, opts Options) Billability {
	if isBlank(marker) {
		return Billability{Billable: true, Status: StatusActive}
	}

	d, ok := ParseDate(marker)
	if !ok {
		return Billability{}
	}

	grace := time.Duration(opts.GracePeriodDays) * 24 * time.Hour
	diff := opts.ReferenceDate.Sub(d)
	if diff < 0 || diff <= grace {
		return Billability{
			Billable:         true,
			Status:           StatusRecentlyDeactivated,
			DeactivationDate: d,
			HasDate:          true,
		}
	}
	return Billability{DeactivationDate: d, HasDate: true}
}

// EvaluateLegacy applies the per-platform legacy rule. The grace period is
// deliberately not consulted here: the legacy exports predate the grace
// policy and a deactivated row is simply not billed. Keep the asymmetry.
func EvaluateLegacy(platform Platform, row RowIndex) bool {
	switch platform {
	case PlatformLease, PlatformWialon:
		marker, ok := row.Lookup(FieldDeactivationLegacy)
		return !ok || isBlank(marker)
	case PlatformAdas:
		status := strings.ToLower(row.LookupString(FieldStatus, ""))
		return status != "unuse" && status != "baja" && status != "inactive"
	default:
		// Combustible and anything unrecognized is always billable.
		return true
	}
}
