package views

import (
	"fmt"

	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/ui"
	"github.com/hance08/txindex/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx ledger.Transaction, precision int) error {
	pterm.Println()
	ui.Section("Transaction Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Account", tx.AccountID},
		{"Number", fmt.Sprintf("%d", tx.Number)},
		{"Amount", colorAmount(tx.Amount, utils.FormatAmount(tx.Amount, precision))},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}

func RenderAverage(accountID string, average float64, precision int) {
	pterm.Info.Printf("Average amount of %s: %s\n", accountID, colorAmount(average, utils.FormatAmount(average, precision)))
}
