package ledger

// Transaction is a single booked amount identified by (AccountID, Number).
type Transaction struct {
	AccountID string
	Number    int64
	Amount    float64
}

// AccountLedger holds one account's transactions sorted ascending by Number
// together with the mean amount computed when the ledger was built.
type AccountLedger struct {
	AccountID     string
	Transactions  []Transaction
	AverageAmount float64
}

func (l *AccountLedger) clone() AccountLedger {
	txs := make([]Transaction, len(l.Transactions))
	copy(txs, l.Transactions)

	return AccountLedger{
		AccountID:     l.AccountID,
		Transactions:  txs,
		AverageAmount: l.AverageAmount,
	}
}

// LoadMode tells how the last batch reached the store.
type LoadMode string

const (
	ModeLoad   LoadMode = "load"
	ModeAppend LoadMode = "append"
)

// LoadStats describes the last successful Load or Append.
type LoadStats struct {
	ID         string
	Mode       LoadMode
	Received   int
	Indexed    int
	Duplicates int
	Accounts   int
}
