package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/satech-mx/devicebilling/internal/config"
	"github.com/satech-mx/devicebilling/internal/core"
)

const topAccounts = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderSummary prints the headline stats and the biggest accounts, with
// discrepancy rows highlighted so the analyst spots missing prices before
// opening the report file.
func renderSummary(records []core.ConsolidatedRecord, cfg config.Config) string {
	stats := core.ComputeStats(records)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Resultado del Análisis") + "\n\n")

	line := func(label string, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(label), value))
	}
	line("Clientes:", fmt.Sprintf("%d", stats.TotalClients))
	line("Dispositivos cobrables:", fmt.Sprintf("%d (incluye %d bajas recientes)",
		stats.TotalActiveDevices, stats.TotalRecentlyDeactivated))
	line("Facturación estimada:", fmt.Sprintf("$%s %s",
		stats.TotalEstimatedBilling.StringFixed(2), cfg.CurrencyCode))
	line("Clientes con discrepancia:", fmt.Sprintf("%d", stats.ClientsWithMissingCost))

	if len(records) == 0 {
		return b.String()
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("  Top %d cuentas por total a cobrar", topAccounts)) + "\n")
	for i, r := range records {
		if i >= topAccounts {
			break
		}
		row := fmt.Sprintf("  %-30.30s  %4d disp.  $%s", r.OriginalName, r.Counts.TotalActive,
			r.CalculatedTotal.StringFixed(2))
		if r.HasDiscrepancy {
			row = warnStyle.Render(row + "  ⚠ discrepancia")
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}
