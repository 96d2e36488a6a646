package account

import (
	"context"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/spf13/cobra"
)

type AverageCommandRunner struct {
	env *cmdutil.Env
}

func NewAverageCmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "avg <account>",
		Aliases: []string{"average"},
		Short:   "Show the average transaction amount of an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AverageCommandRunner{
				env: env,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}
}

func (r *AverageCommandRunner) Run(ctx context.Context, accountID string) error {
	if _, err := r.env.LoadIndex(ctx); err != nil {
		return err
	}

	average, err := r.env.Service().Ledger.AverageAmount(accountID)
	if err != nil {
		return err
	}

	views.RenderAverage(accountID, average, r.env.Precision())
	return nil
}
