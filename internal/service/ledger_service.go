package service

import (
	"context"
	"fmt"

	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/logger"
	"github.com/hance08/txindex/internal/source"
)

// AccountSummary is one row of the accounts overview.
type AccountSummary struct {
	AccountID     string
	Count         int
	FirstNumber   int64
	LastNumber    int64
	AverageAmount float64
}

type LedgerService struct {
	store *ledger.Store
}

func NewLedgerService(store *ledger.Store) *LedgerService {
	return &LedgerService{store: store}
}

// LoadFrom reads a batch and replaces the index with it.
func (ls *LedgerService) LoadFrom(ctx context.Context, r source.Reader) (ledger.LoadStats, error) {
	return ls.ingest(ctx, r, ls.store.Load)
}

// AppendFrom reads a batch and merges it into the current index.
func (ls *LedgerService) AppendFrom(ctx context.Context, r source.Reader) (ledger.LoadStats, error) {
	return ls.ingest(ctx, r, ls.store.Append)
}

func (ls *LedgerService) ingest(ctx context.Context, r source.Reader, apply func([]ledger.Transaction) error) (ledger.LoadStats, error) {
	log := logger.WithFields(logger.FromContext(ctx), map[string]any{"source": r.Name()})

	txs, err := r.Read(ctx)
	if err != nil {
		return ledger.LoadStats{}, fmt.Errorf("failed to read batch from %s: %w", r.Name(), err)
	}
	log.Debug().Int("records", len(txs)).Msg("batch read")

	if err := apply(txs); err != nil {
		return ledger.LoadStats{}, fmt.Errorf("failed to index batch from %s: %w", r.Name(), err)
	}

	return ls.store.LastLoad(), nil
}

func (ls *LedgerService) FindTransaction(accountID string, number int64) (ledger.Transaction, error) {
	return ls.store.FindTransaction(accountID, number)
}

func (ls *LedgerService) FindTransactions(accountID string) ([]ledger.Transaction, error) {
	return ls.store.FindTransactions(accountID)
}

func (ls *LedgerService) AverageAmount(accountID string) (float64, error) {
	return ls.store.CalculateAverageAmount(accountID)
}

func (ls *LedgerService) Accounts() []string {
	return ls.store.Accounts()
}

func (ls *LedgerService) LastLoad() ledger.LoadStats {
	return ls.store.LastLoad()
}

// AccountSummaries returns one summary per indexed account, ordered by id.
func (ls *LedgerService) AccountSummaries() ([]AccountSummary, error) {
	ids := ls.store.Accounts()
	summaries := make([]AccountSummary, 0, len(ids))

	for _, id := range ids {
		l, err := ls.store.Ledger(id)
		if err != nil {
			return nil, err
		}

		txs := l.Transactions
		summaries = append(summaries, AccountSummary{
			AccountID:     id,
			Count:         len(txs),
			FirstNumber:   txs[0].Number,
			LastNumber:    txs[len(txs)-1].Number,
			AverageAmount: l.AverageAmount,
		})
	}

	return summaries, nil
}
