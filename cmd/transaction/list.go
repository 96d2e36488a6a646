package transaction

import (
	"context"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	env *cmdutil.Env
}

func NewListCmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list <account>",
		Short: "List all transactions of an account in ascending number order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				env: env,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}
}

func (r *ListCommandRunner) Run(ctx context.Context, accountID string) error {
	if _, err := r.env.LoadIndex(ctx); err != nil {
		return err
	}

	txs, err := r.env.Service().Ledger.FindTransactions(accountID)
	if err != nil {
		return err
	}

	average, err := r.env.Service().Ledger.AverageAmount(accountID)
	if err != nil {
		return err
	}

	return views.NewTransactionListView(r.env.Precision()).Render(accountID, txs, average)
}
