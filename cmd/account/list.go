package account

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
		Short: "List every indexed account with its transaction count and average",
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
	if _, err := r.env.LoadIndex(ctx); err != nil {
		return err
	}

	summaries, err := r.env.Service().Ledger.AccountSummaries()
	if err != nil {
		return fmt.Errorf("failed to summarize accounts: %w", err)
	}

	return views.NewAccountListView(r.env.Precision()).Render(summaries)
}
