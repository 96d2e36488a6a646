package cmd

import (
	"context"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type loadRunner struct {
	env *cmdutil.Env
}

func NewLoadCmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load a batch and report how it was indexed",
		Long: `Load the batch given by --source/--batch (plus any --append batches)
and print how many records were indexed and how many duplicates were dropped.
Nothing is kept after the command exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &loadRunner{
				env: env,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *loadRunner) Run(ctx context.Context) error {
	stats, err := r.env.LoadIndex(ctx)
	if err != nil {
		return err
	}

	ref := r.env.Source
	if r.env.Batch != "" {
		ref = cmdutil.FeedPrefix + r.env.Batch
	}
	if ref == "" {
		ref = r.env.Service().Config.Defaults.Source
	}

	if err := views.RenderLoadReport(ref, stats); err != nil {
		return err
	}
	pterm.Success.Println("Batch is valid")
	return nil
}
