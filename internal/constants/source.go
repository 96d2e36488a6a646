package constants

const (
	// Batch file formats
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"

	// Column order for CSV batches
	ColumnAccountID         = "account_id"
	ColumnTransactionNumber = "transaction_number"
	ColumnAmount            = "amount"

	FeedFileName   = "feed.db"
	ConfigFileName = "config"
	AppDirName     = "txindex"
	EnvPrefix      = "TXINDEX"
)
