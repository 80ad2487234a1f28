// Package core implements the reconciliation engine: it merges device counts
// from the operations/platforms workbook with per-account pricing from the
// costs workbook into one consolidated billing report.
package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeviceStatus classifies why a device is billable in the current cycle.
type DeviceStatus string

const (
	StatusActive DeviceStatus = "ACTIVE"
	// StatusRecentlyDeactivated marks devices billed only because their
	// deactivation falls inside the grace window (or in the future).
	StatusRecentlyDeactivated DeviceStatus = "RECENTLY_DEACTIVATED"
)

// Platform identifies the tracking system a device belongs to.
type Platform string

const (
	PlatformLease       Platform = "lease"
	PlatformWialon      Platform = "wialon"
	PlatformCombustible Platform = "combustible"
	PlatformAdas        Platform = "adas"
)

// DeviceDetail is one billable device contributing to an account's count.
// Built once during aggregation, never mutated afterwards.
type DeviceDetail struct {
	Name             string
	IMEI             string
	DeviceType       string
	DeactivationDate string // "2006-01-02" when known, empty when never deactivated
	Status           DeviceStatus
	Platform         string
}

// PlatformCounts tallies billable devices per platform for one account.
type PlatformCounts struct {
	Lease       int
	Wialon      int
	Combustible int
	Adas        int
	// TotalActive counts every billable device, grace-period deactivations
	// included. Always equals Lease+Wialon+Combustible+Adas.
	TotalActive int
	// RecentlyDeactivated is the subset of TotalActive billed only because
	// of the grace rule.
	RecentlyDeactivated int
}

func (c *PlatformCounts) add(p Platform) {
	switch p {
	case PlatformWialon:
		c.Wialon++
	case PlatformAdas:
		c.Adas++
	case PlatformCombustible:
		c.Combustible++
	default:
		c.Lease++
	}
}

// CostData carries per-account billing metadata from the costs workbook.
type CostData struct {
	UnitPrice      decimal.Decimal
	BillingType    string
	Notes          string
	CommercialName string
}

// ConsolidatedRecord is the engine's unit of output: one account with its
// device counts, pricing and final billable total.
type ConsolidatedRecord struct {
	Key             string // normalized account key
	OriginalName    string // first-seen raw spelling, kept for display
	Counts          PlatformCounts
	Billing         CostData
	CalculatedTotal decimal.Decimal
	HasDiscrepancy  bool
	Devices         []DeviceDetail
}

// Options configures a reconciliation pass. Read-only throughout aggregation.
type Options struct {
	// ReferenceDate is the billing cutoff, the "now" of the pass.
	ReferenceDate time.Time
	// GracePeriodDays is how long a deactivated device stays billable.
	GracePeriodDays int
}

func newRecord(key, name string) *ConsolidatedRecord {
	return &ConsolidatedRecord{
		Key:          key,
		OriginalName: name,
		Billing: CostData{
			UnitPrice:   decimal.Zero,
			BillingType: "-",
			Notes:       "-",
		},
		CalculatedTotal: decimal.Zero,
	}
}
