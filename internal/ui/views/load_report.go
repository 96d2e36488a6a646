package views

import (
	"fmt"

	"github.com/hance08/txindex/internal/ledger"
	"github.com/pterm/pterm"
)

// RenderLoadReport prints what the last load did to the index.
func RenderLoadReport(source string, stats ledger.LoadStats) error {
	duplicates := fmt.Sprintf("%d", stats.Duplicates)
	if stats.Duplicates > 0 {
		duplicates = pterm.Yellow(duplicates + " (dropped)")
	}

	tableData := pterm.TableData{
		{"Source", source},
		{"Mode", string(stats.Mode)},
		{"Load ID", pterm.Gray(stats.ID)},
		{"Records Read", fmt.Sprintf("%d", stats.Received)},
		{"Indexed", pterm.Green(fmt.Sprintf("%d", stats.Indexed))},
		{"Duplicates", duplicates},
		{"Accounts", fmt.Sprintf("%d", stats.Accounts)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
