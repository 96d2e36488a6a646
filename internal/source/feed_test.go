package source

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestFeed(t *testing.T) *FeedDB {
	t.Helper()

	feed, err := OpenFeed(filepath.Join(t.TempDir(), "feed", "feed.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { feed.Close() })

	feed.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return feed
}

func TestFeed_ImportAndRead(t *testing.T) {
	ctx := context.Background()
	feed := openTestFeed(t)

	info, err := feed.ImportBatch(ctx, "january", wantBatch)
	require.NoError(t, err)
	assert.Equal(t, "january", info.Name)
	assert.Equal(t, len(wantBatch), info.Records)
	assert.NotEmpty(t, info.ID)

	r := feed.Batch("january")
	assert.Equal(t, "feed:january", r.Name())

	txs, err := r.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantBatch, txs)
}

func TestFeed_ExtremeAmountsRoundTrip(t *testing.T) {
	ctx := context.Background()
	feed := openTestFeed(t)

	batch := []ledger.Transaction{
		{AccountID: "882346125300012378005", Number: 445, Amount: 1.7976931348623157e308},
		{AccountID: "882346125300012378005", Number: 54, Amount: -1.7976931348623157e308},
		{AccountID: "34600034880023477100324124340001", Number: 47, Amount: 0x1p-1023},
	}
	_, err := feed.ImportBatch(ctx, "limits", batch)
	require.NoError(t, err)

	txs, err := feed.Batch("limits").Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, batch, txs)
}

func TestFeed_DuplicateName(t *testing.T) {
	ctx := context.Background()
	feed := openTestFeed(t)

	_, err := feed.ImportBatch(ctx, "january", wantBatch)
	require.NoError(t, err)

	_, err = feed.ImportBatch(ctx, "january", wantBatch)
	assert.ErrorIs(t, err, ErrBatchExists)
}

func TestFeed_ImportRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	feed := openTestFeed(t)

	_, err := feed.ImportBatch(ctx, "bad", []ledger.Transaction{{AccountID: "A1", Number: 1}, {AccountID: "", Number: 2}})
	assert.Error(t, err)

	_, err = feed.ImportBatch(ctx, "", wantBatch)
	assert.Error(t, err)

	_, err = feed.ImportBatch(ctx, "nan", []ledger.Transaction{{AccountID: "A1", Number: 1, Amount: math.NaN()}})
	assert.ErrorIs(t, err, validation.ErrAmountNotFinite)

	batches, err := feed.ListBatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestFeed_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	feed := openTestFeed(t)

	_, err := feed.ImportBatch(ctx, "b", wantBatch[:1])
	require.NoError(t, err)
	_, err = feed.ImportBatch(ctx, "a", wantBatch)
	require.NoError(t, err)
	_, err = feed.ImportBatch(ctx, "empty", nil)
	require.NoError(t, err)

	batches, err := feed.ListBatches(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, "a", batches[0].Name)
	assert.Equal(t, len(wantBatch), batches[0].Records)
	assert.Equal(t, "b", batches[1].Name)
	assert.Equal(t, 1, batches[1].Records)
	assert.Equal(t, 0, batches[2].Records)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), batches[0].CreatedAt)

	require.NoError(t, feed.DeleteBatch(ctx, "a"))
	assert.ErrorIs(t, feed.DeleteBatch(ctx, "a"), ErrBatchNotFound)

	_, err = feed.Batch("a").Read(ctx)
	assert.ErrorIs(t, err, ErrBatchNotFound)

	batches, err = feed.ListBatches(ctx)
	require.NoError(t, err)
	assert.Len(t, batches, 2)
}

func TestFeed_ReopenKeepsBatches(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "feed.db")

	feed, err := OpenFeed(path, os.DirFS("../.."))
	require.NoError(t, err)
	_, err = feed.ImportBatch(ctx, "kept", wantBatch)
	require.NoError(t, err)
	require.NoError(t, feed.Close())

	feed, err = OpenFeed(path, os.DirFS("../.."))
	require.NoError(t, err)
	defer feed.Close()

	txs, err := feed.Batch("kept").Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantBatch, txs)
}
