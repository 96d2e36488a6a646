package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/txindex/internal/config"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/logger"
	"github.com/hance08/txindex/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	name string
	txs  []ledger.Transaction
	err  error
}

func (r *stubReader) Name() string { return r.name }

func (r *stubReader) Read(ctx context.Context) ([]ledger.Transaction, error) {
	return r.txs, r.err
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	feed, err := source.OpenFeed(filepath.Join(t.TempDir(), "feed.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { feed.Close() })

	return NewService(ledger.NewStore(), feed, config.NewDefault())
}

func TestLedgerService_LoadAndQuery(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stats, err := svc.Ledger.LoadFrom(ctx, &stubReader{name: "stub", txs: []ledger.Transaction{
		{AccountID: "A1", Number: 10, Amount: 100},
		{AccountID: "A1", Number: 5, Amount: 50},
		{AccountID: "A1", Number: 10, Amount: 999},
		{AccountID: "B2", Number: 1, Amount: -3},
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Indexed)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, stats, svc.Ledger.LastLoad())

	tx, err := svc.Ledger.FindTransaction("A1", 10)
	require.NoError(t, err)
	assert.Equal(t, 100.0, tx.Amount)

	avg, err := svc.Ledger.AverageAmount("A1")
	require.NoError(t, err)
	assert.Equal(t, 75.0, avg)

	summaries, err := svc.Ledger.AccountSummaries()
	require.NoError(t, err)
	assert.Equal(t, []AccountSummary{
		{AccountID: "A1", Count: 2, FirstNumber: 5, LastNumber: 10, AverageAmount: 75},
		{AccountID: "B2", Count: 1, FirstNumber: 1, LastNumber: 1, AverageAmount: -3},
	}, summaries)
	assert.Equal(t, []string{"A1", "B2"}, svc.Ledger.Accounts())
}

func TestLedgerService_AppendFrom(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Ledger.LoadFrom(ctx, &stubReader{name: "first", txs: []ledger.Transaction{{AccountID: "A1", Number: 1, Amount: 10}}})
	require.NoError(t, err)

	stats, err := svc.Ledger.AppendFrom(ctx, &stubReader{name: "second", txs: []ledger.Transaction{{AccountID: "A1", Number: 2, Amount: 20}}})
	require.NoError(t, err)
	assert.Equal(t, ledger.ModeAppend, stats.Mode)

	txs, err := svc.Ledger.FindTransactions("A1")
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestLedgerService_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	readErr := errors.New("disk on fire")

	_, err := svc.Ledger.LoadFrom(ctx, &stubReader{name: "broken", err: readErr})
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "broken")

	_, err = svc.Ledger.LoadFrom(ctx, &stubReader{name: "invalid", txs: []ledger.Transaction{{AccountID: "no spaces", Number: 1}}})
	assert.ErrorIs(t, err, ledger.ErrInvalidAccountNumber)

	_, err = svc.Ledger.AverageAmount("A1")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestLedgerService_LogsThroughContext(t *testing.T) {
	svc := newTestService(t)
	buf := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(buf, "debug"))

	_, err := svc.Ledger.LoadFrom(ctx, &stubReader{name: "stub", txs: []ledger.Transaction{{AccountID: "A1", Number: 1}}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"source":"stub"`)
	assert.Contains(t, buf.String(), "batch read")
}

func TestFeedService_ImportLoadDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte("A1,10,100\nA1,5,50\nA1,10,999\n"), 0644))

	info, err := svc.Feed.Import(ctx, "first", path)
	require.NoError(t, err)
	assert.Equal(t, 3, info.Records)

	names, err := svc.Feed.BatchNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, names)

	_, err = svc.Ledger.LoadFrom(ctx, svc.Feed.Reader("first"))
	require.NoError(t, err)

	txs, err := svc.Ledger.FindTransactions("A1")
	require.NoError(t, err)
	assert.Equal(t, []ledger.Transaction{
		{AccountID: "A1", Number: 5, Amount: 50},
		{AccountID: "A1", Number: 10, Amount: 100},
	}, txs)

	require.NoError(t, svc.Feed.Delete(ctx, "first"))
	batches, err := svc.Feed.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestFeedService_ImportUnknownFormat(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Feed.Import(context.Background(), "x", "batch.txt")
	assert.ErrorIs(t, err, source.ErrUnknownFormat)
}
