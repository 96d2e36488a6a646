package transaction

import (
	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(env *cmdutil.Env) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Look up transactions in the loaded batch",
		Long:    `Look up a single transaction or list all transactions of an account in the loaded batch.`,
	}

	transactionCmd.AddCommand(NewShowCmd(env))
	transactionCmd.AddCommand(NewListCmd(env))

	return transactionCmd
}
