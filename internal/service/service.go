package service

import (
	"github.com/hance08/txindex/internal/config"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/source"
)

type Service struct {
	Ledger *LedgerService
	Feed   *FeedService
	Config *config.Config
}

func NewService(store *ledger.Store, feed *source.FeedDB, cfg *config.Config) *Service {
	return &Service{
		Ledger: NewLedgerService(store),
		Feed:   NewFeedService(feed),
		Config: cfg,
	}
}
