package views

import (
	"fmt"

	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	precision int
}

func NewTransactionListView(precision int) *TransactionListView {
	return &TransactionListView{precision: precision}
}

func (v *TransactionListView) Render(accountID string, txs []ledger.Transaction, average float64) error {
	pterm.DefaultSection.Printf("Transactions of %s", accountID)

	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Number", "Amount"},
	}

	for _, tx := range txs {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.Number),
			colorAmount(tx.Amount, utils.FormatCompact(tx.Amount, v.precision)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions, average %s\n", len(txs), utils.FormatCompact(average, v.precision))
	return nil
}

func colorAmount(amount float64, text string) string {
	switch {
	case amount > 0:
		return pterm.Green(text)
	case amount < 0:
		return pterm.Red(text)
	default:
		return pterm.Gray(text)
	}
}
