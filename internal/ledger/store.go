// Package ledger indexes a batch of transactions per account and answers
// point lookups, full listings and average amounts against that index.
//
// A Store is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package ledger

import (
	"cmp"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Store struct {
	accounts map[string]*AccountLedger
	last     LoadStats
	log      zerolog.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		accounts: make(map[string]*AccountLedger),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the whole index with the given batch. If any record fails
// validation the previous index stays in place. Later records that repeat an
// account and transaction number already seen in the batch are dropped.
func (s *Store) Load(txs []Transaction) error {
	if err := validateBatch(txs); err != nil {
		s.log.Warn().Err(err).Int("received", len(txs)).Msg("batch rejected")
		return err
	}

	b := newBuilder()
	for _, tx := range txs {
		b.add(tx)
	}

	return s.commit(nil, b, ModeLoad, len(txs))
}

// Append merges a batch into the current index. Records already indexed win
// over incoming duplicates. Only ledgers that receive new records are
// re-sorted and have their average recomputed.
func (s *Store) Append(txs []Transaction) error {
	if err := validateBatch(txs); err != nil {
		s.log.Warn().Err(err).Int("received", len(txs)).Msg("append batch rejected")
		return err
	}

	b := newBuilder()
	for _, tx := range txs {
		if _, seeded := b.ledgers[tx.AccountID]; seeded {
			continue
		}
		if current, ok := s.accounts[tx.AccountID]; ok {
			b.seed(current)
		}
	}
	for _, tx := range txs {
		b.add(tx)
	}

	return s.commit(s.accounts, b, ModeAppend, len(txs))
}

// commit finishes the builder and swaps the result in. Ledgers from base
// that the builder did not produce are carried over unchanged.
func (s *Store) commit(base map[string]*AccountLedger, b *builder, mode LoadMode, received int) error {
	ledgers, err := b.finish()
	if err != nil {
		return err
	}

	for id, l := range base {
		if _, ok := ledgers[id]; !ok {
			ledgers[id] = l
		}
	}

	s.swap(ledgers, LoadStats{
		Mode:       mode,
		Received:   received,
		Indexed:    b.indexed,
		Duplicates: b.duplicates,
	})
	return nil
}

func (s *Store) swap(accounts map[string]*AccountLedger, stats LoadStats) {
	stats.ID = uuid.NewString()
	stats.Accounts = len(accounts)

	s.accounts = accounts
	s.last = stats

	s.log.Debug().
		Str("load_id", stats.ID).
		Str("mode", string(stats.Mode)).
		Int("received", stats.Received).
		Int("indexed", stats.Indexed).
		Int("duplicates", stats.Duplicates).
		Int("accounts", stats.Accounts).
		Msg("index rebuilt")
}

// FindTransaction looks up a single transaction by binary search over the
// account's sorted ledger.
func (s *Store) FindTransaction(accountID string, number int64) (Transaction, error) {
	if number < 0 {
		return Transaction{}, &Error{Kind: ErrInvalidTransactionNumber, AccountID: accountID, TransactionNumber: number}
	}

	l, ok := s.accounts[accountID]
	if !ok {
		return Transaction{}, accountNotFound(accountID)
	}

	i, found := slices.BinarySearchFunc(l.Transactions, number, func(tx Transaction, n int64) int {
		return cmp.Compare(tx.Number, n)
	})
	if !found {
		return Transaction{}, &Error{Kind: ErrTransactionNotFound, AccountID: accountID, TransactionNumber: number}
	}

	return l.Transactions[i], nil
}

// FindTransactions returns a copy of the account's transactions in ascending
// number order.
func (s *Store) FindTransactions(accountID string) ([]Transaction, error) {
	l, ok := s.accounts[accountID]
	if !ok {
		return nil, accountNotFound(accountID)
	}

	return slices.Clone(l.Transactions), nil
}

func (s *Store) CalculateAverageAmount(accountID string) (float64, error) {
	l, ok := s.accounts[accountID]
	if !ok {
		return 0, accountNotFound(accountID)
	}

	return l.AverageAmount, nil
}

// Ledger returns a copy of one account's ledger.
func (s *Store) Ledger(accountID string) (AccountLedger, error) {
	l, ok := s.accounts[accountID]
	if !ok {
		return AccountLedger{}, accountNotFound(accountID)
	}

	return l.clone(), nil
}

// Accounts lists the indexed account ids in ascending order.
func (s *Store) Accounts() []string {
	ids := make([]string, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) LastLoad() LoadStats {
	return s.last
}
