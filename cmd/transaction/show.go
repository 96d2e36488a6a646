package transaction

import (
	"context"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	env *cmdutil.Env
}

func NewShowCmd(env *cmdutil.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account> <number>",
		Short: "Show one transaction of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				env: env,
			}
			return runner.Run(cmd.Context(), args)
		},
	}
}

func (r *ShowCommandRunner) Run(ctx context.Context, args []string) error {
	number, err := cmdutil.ParseTransactionNumber(args[1])
	if err != nil {
		return err
	}

	if _, err := r.env.LoadIndex(ctx); err != nil {
		return err
	}

	tx, err := r.env.Service().Ledger.FindTransaction(args[0], number)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(tx, r.env.Precision())
}
