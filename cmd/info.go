package cmd

import (
	"context"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/config"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	env *cmdutil.Env
}

func NewInfoCmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, feed database path, and defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				env: env,
			}

			return runner.Run(cmd.Context())
		},
	}
}

func (r *infoRunner) Run(ctx context.Context) error {
	cfg := r.env.Service().Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	feedPath, _ := config.ExpandPath(cfg.Feed.Path)

	batches, err := r.env.Service().Feed.List(ctx)
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:    configPath,
		FeedPath:      feedPath,
		FeedBatches:   len(batches),
		DefaultSource: cfg.Defaults.Source,
		LogLevel:      cfg.Log.Level,
		Precision:     cfg.Display.Precision,
		AppDataDir:    appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
