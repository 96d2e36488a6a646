package service

import (
	"context"
	"fmt"

	"github.com/hance08/txindex/internal/source"
)

type FeedService struct {
	feed *source.FeedDB
}

func NewFeedService(feed *source.FeedDB) *FeedService {
	return &FeedService{feed: feed}
}

// Import reads a batch file and stores it in the feed under name.
func (fs *FeedService) Import(ctx context.Context, name, path string) (source.BatchInfo, error) {
	r, err := source.Open(path)
	if err != nil {
		return source.BatchInfo{}, err
	}

	txs, err := r.Read(ctx)
	if err != nil {
		return source.BatchInfo{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return fs.feed.ImportBatch(ctx, name, txs)
}

func (fs *FeedService) List(ctx context.Context) ([]source.BatchInfo, error) {
	return fs.feed.ListBatches(ctx)
}

func (fs *FeedService) Delete(ctx context.Context, name string) error {
	return fs.feed.DeleteBatch(ctx, name)
}

func (fs *FeedService) Reader(name string) source.Reader {
	return fs.feed.Batch(name)
}

// BatchNames lists the names of all stored batches.
func (fs *FeedService) BatchNames(ctx context.Context) ([]string, error) {
	batches, err := fs.feed.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(batches))
	for _, b := range batches {
		names = append(names, b.Name)
	}
	return names, nil
}
