package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hance08/txindex/internal/app"
	"github.com/hance08/txindex/internal/config"
	"github.com/hance08/txindex/internal/ledger"
	"github.com/hance08/txindex/internal/logger"
	"github.com/hance08/txindex/internal/service"
	"github.com/hance08/txindex/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FeedPrefix marks a --source or --append value that names a feed batch
// instead of a file.
const FeedPrefix = "feed:"

var ErrNoSource = errors.New("no batch to load: pass --source or --batch, or set defaults.source in the config")

// Env carries the global flags and the application shared by every command.
type Env struct {
	CfgFile string
	Verbose bool
	Source  string
	Batch   string
	Append  []string

	App     *app.App
	cleanup func()
}

// BindFlags registers the global flags on the root command.
func (e *Env) BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&e.CfgFile, "config", "c", "", "set the config file path")
	flags.BoolVarP(&e.Verbose, "verbose", "v", false, "print debug logs to stderr")
	flags.StringVarP(&e.Source, "source", "s", "", "batch file to load (.csv, .json, .yaml) or feed:<name>")
	flags.StringVarP(&e.Batch, "batch", "b", "", "name of an imported feed batch to load")
	flags.StringSliceVar(&e.Append, "append", nil, "extra batches merged after the load (repeatable)")
}

// Init reads the configuration and builds the application. It is meant to
// run from the root command's PersistentPreRunE.
func (e *Env) Init(cmd *cobra.Command, migrations fs.FS) error {
	appDir, err := config.AppDataDir()
	if err != nil {
		return fmt.Errorf("error getting app dir: %w", err)
	}

	cfg, err := config.Load(viper.New(), e.CfgFile, appDir)
	if err != nil {
		return err
	}
	if e.Verbose {
		cfg.Log.Level = "debug"
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		return err
	}

	e.App = application
	e.cleanup = cleanup
	cmd.SetContext(logger.WithContext(cmd.Context(), application.Logger))
	return nil
}

func (e *Env) Close() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

func (e *Env) Service() *service.Service {
	return e.App.Service
}

func (e *Env) Precision() int {
	return e.App.Service.Config.Display.Precision
}

// OpenRef resolves a batch reference: "feed:<name>" reads from the feed
// database, anything else is a file path.
func (e *Env) OpenRef(ref string) (source.Reader, error) {
	if name, ok := strings.CutPrefix(ref, FeedPrefix); ok {
		if name == "" {
			return nil, fmt.Errorf("missing batch name in '%s'", ref)
		}
		return e.Service().Feed.Reader(name), nil
	}

	path, err := config.ExpandPath(ref)
	if err != nil {
		return nil, err
	}
	return source.Open(path)
}

// primaryRef picks the batch to load: --batch, then --source, then the
// configured default source.
func (e *Env) primaryRef() (string, error) {
	switch {
	case e.Batch != "":
		return FeedPrefix + e.Batch, nil
	case e.Source != "":
		return e.Source, nil
	case e.Service().Config.Defaults.Source != "":
		return e.Service().Config.Defaults.Source, nil
	}
	return "", ErrNoSource
}

// LoadIndex loads the primary batch and merges every --append batch after
// it. It returns the stats of the last step.
func (e *Env) LoadIndex(ctx context.Context) (ledger.LoadStats, error) {
	ref, err := e.primaryRef()
	if err != nil {
		return ledger.LoadStats{}, err
	}

	return e.LoadRef(ctx, ref, e.Append...)
}

// LoadRef replaces the index with ref and appends the extra batches.
func (e *Env) LoadRef(ctx context.Context, ref string, extra ...string) (ledger.LoadStats, error) {
	r, err := e.OpenRef(ref)
	if err != nil {
		return ledger.LoadStats{}, err
	}

	stats, err := e.Service().Ledger.LoadFrom(ctx, r)
	if err != nil {
		return ledger.LoadStats{}, err
	}

	for _, more := range extra {
		r, err := e.OpenRef(more)
		if err != nil {
			return ledger.LoadStats{}, err
		}
		if stats, err = e.Service().Ledger.AppendFrom(ctx, r); err != nil {
			return ledger.LoadStats{}, err
		}
	}

	return stats, nil
}
