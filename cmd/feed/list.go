package feed

import (
	"context"
	"fmt"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	env *cmdutil.Env
}

func NewListCmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				env: env,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	batches, err := r.env.Service().Feed.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list batches: %w", err)
	}

	return views.RenderBatchList(batches)
}
