package ledger

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hance08/txindex/internal/validation"
)

// validateBatch checks every record before anything is grouped, so a bad
// batch never touches the current index. The first offending record wins.
func validateBatch(txs []Transaction) error {
	for _, tx := range txs {
		if err := validation.AccountID(tx.AccountID); err != nil {
			return &Error{Kind: ErrInvalidAccountNumber, AccountID: tx.AccountID, Reason: err}
		}
		if tx.Number < 0 {
			return &Error{Kind: ErrInvalidTransactionNumber, AccountID: tx.AccountID, TransactionNumber: tx.Number}
		}
	}
	return nil
}

// builder groups records per account while remembering which numbers each
// account already holds.
type builder struct {
	ledgers    map[string]*AccountLedger
	seen       map[string]map[int64]struct{}
	touched    map[string]struct{}
	indexed    int
	duplicates int
}

func newBuilder() *builder {
	return &builder{
		ledgers: make(map[string]*AccountLedger),
		seen:    make(map[string]map[int64]struct{}),
		touched: make(map[string]struct{}),
	}
}

// seed starts the builder from an existing ledger. Its records count as
// seen first, so they win over anything added afterwards.
func (b *builder) seed(l *AccountLedger) {
	seeded := l.clone()
	numbers := make(map[int64]struct{}, len(seeded.Transactions))
	for _, tx := range seeded.Transactions {
		numbers[tx.Number] = struct{}{}
	}

	b.ledgers[l.AccountID] = &seeded
	b.seen[l.AccountID] = numbers
}

func (b *builder) add(tx Transaction) {
	l, ok := b.ledgers[tx.AccountID]
	if !ok {
		l = &AccountLedger{AccountID: tx.AccountID}
		b.ledgers[tx.AccountID] = l
		b.seen[tx.AccountID] = make(map[int64]struct{})
	}

	numbers := b.seen[tx.AccountID]
	if _, dup := numbers[tx.Number]; dup {
		b.duplicates++
		return
	}

	numbers[tx.Number] = struct{}{}
	l.Transactions = append(l.Transactions, tx)
	b.touched[tx.AccountID] = struct{}{}
	b.indexed++
}

// finish sorts every touched ledger once and computes its average.
func (b *builder) finish() (map[string]*AccountLedger, error) {
	for id := range b.touched {
		l := b.ledgers[id]

		slices.SortFunc(l.Transactions, func(a, c Transaction) int {
			return cmp.Compare(a.Number, c.Number)
		})

		avg, err := meanAmount(l.Transactions)
		if err != nil {
			return nil, fmt.Errorf("account '%s': %w", id, err)
		}
		l.AverageAmount = avg
	}

	return b.ledgers, nil
}
