package app

import (
	"fmt"
	"io/fs"

	"github.com/hance08/txindex/internal/config"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/logger"
	"github.com/hance08/txindex/internal/service"
	"github.com/hance08/txindex/internal/source"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Logger  zerolog.Logger
}

// NewApp opens the batch feed, builds an empty ledger store and wires the
// services. The returned cleanup closes the feed database.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	feedPath, err := config.ExpandPath(cfg.Feed.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve feed path: %w", err)
	}

	feed, err := source.OpenFeed(feedPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize feed database: %w", err)
	}

	log := logger.New(cfg.Log.Level)
	store := ledger.NewStore(ledger.WithLogger(log))
	svc := service.NewService(store, feed, cfg)

	cleanup := func() {
		if err := feed.Close(); err != nil {
			log.Error().Err(err).Msg("error closing feed database")
		}
	}

	return &App{
		Service: svc,
		Logger:  log,
	}, cleanup, nil
}
