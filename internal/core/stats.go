package core

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Stats summarizes a finished reconciliation for the terminal dashboard.
type Stats struct {
	TotalClients             int
	TotalActiveDevices       int
	TotalRecentlyDeactivated int
	TotalEstimatedBilling    decimal.Decimal
	ClientsWithMissingCost   int
}

// ComputeStats folds the report into its headline numbers.
func ComputeStats(records []ConsolidatedRecord) Stats {
	return lo.Reduce(records, func(acc Stats, r ConsolidatedRecord, _ int) Stats {
		acc.TotalClients++
		acc.TotalActiveDevices += r.Counts.TotalActive
		acc.TotalRecentlyDeactivated += r.Counts.RecentlyDeactivated
		acc.TotalEstimatedBilling = acc.TotalEstimatedBilling.Add(r.CalculatedTotal)
		if r.HasDiscrepancy {
			acc.ClientsWithMissingCost++
		}
		return acc
	}, Stats{TotalEstimatedBilling: decimal.Zero})
}
