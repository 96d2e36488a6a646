package views

import (
	"fmt"

	"github.com/hance08/txindex/internal/service"
	"github.com/hance08/txindex/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	precision int
}

func NewAccountListView(precision int) *AccountListView {
	return &AccountListView{precision: precision}
}

func (v *AccountListView) Render(summaries []service.AccountSummary) error {
	pterm.DefaultSection.Printf("Account List")

	if len(summaries) == 0 {
		pterm.Warning.Println("No accounts indexed")
		return nil
	}

	tableData := pterm.TableData{
		{"Account", "Transactions", "Numbers", "Average"},
	}

	for _, s := range summaries {
		tableData = append(tableData, []string{
			s.AccountID,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%d..%d", s.FirstNumber, s.LastNumber),
			colorAmount(s.AverageAmount, utils.FormatCompact(s.AverageAmount, v.precision)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(summaries))
	return nil
}
