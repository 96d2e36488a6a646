package account

import (
	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/spf13/cobra"
)

func NewAccountCmd(env *cmdutil.Env) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Show the accounts of the loaded batch and their averages",
		Long:  `Show the accounts of the loaded batch and their averages.`,
	}

	accountCmd.AddCommand(NewListCmd(env))
	accountCmd.AddCommand(NewAverageCmd(env))

	return accountCmd
}
