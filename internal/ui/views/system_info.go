package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath    string
	FeedPath      string
	FeedBatches   int
	DefaultSource string
	LogLevel      string
	Precision     int
	AppDataDir    string
}

func RenderSystemInfo(data SystemInfoItem) error {
	defaultSource := data.DefaultSource
	if defaultSource == "" {
		defaultSource = pterm.Gray("(none, pass --source or --batch)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Feed Database", data.FeedPath},
		{"Imported Batches", pterm.Sprintf("%d", data.FeedBatches)},
		{"Default Source", defaultSource},
		{"Log Level", data.LogLevel},
		{"Amount Precision", pterm.Sprintf("%d", data.Precision)},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
