package views

import (
	"fmt"

	"github.com/hance08/txindex/internal/source"
	"github.com/pterm/pterm"
)

func RenderBatchList(batches []source.BatchInfo) error {
	if len(batches) == 0 {
		pterm.Warning.Println("No batches imported yet")
		return nil
	}

	pterm.DefaultSection.Println("Imported Batches")

	tableData := pterm.TableData{
		{"Name", "Records", "Imported", "ID"},
	}
	for _, b := range batches {
		tableData = append(tableData, []string{
			pterm.Cyan(b.Name),
			fmt.Sprintf("%d", b.Records),
			b.CreatedAt.Local().Format("2006-01-02 15:04"),
			pterm.Gray(b.ID),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d batches\n", len(batches))
	return nil
}
