package cmd

import (
	"io/fs"

	"github.com/hance08/txindex/cmd/account"
	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/cmd/feed"
	"github.com/hance08/txindex/cmd/transaction"
	"github.com/hance08/txindex/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	env := &cmdutil.Env{}
	rootCmd := NewRootCmd(env, migrations)

	err := rootCmd.Execute()
	env.Close()

	errhandler.Exit(err)
}

// NewRootCmd assembles the command tree. The application is built lazily in
// PersistentPreRunE so --config is honored.
func NewRootCmd(env *cmdutil.Env, migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "txindex",
		Short: "txindex indexes transaction batches per account and answers lookups",
		Long: `txindex loads a batch of transactions, validates account numbers,
drops repeated transaction numbers (first one wins), sorts every account's
transactions and answers point lookups, listings and average amounts.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.Init(cmd, migrations)
		},
	}

	env.BindFlags(rootCmd)

	rootCmd.AddCommand(account.NewAccountCmd(env))
	rootCmd.AddCommand(transaction.NewTransactionCmd(env))
	rootCmd.AddCommand(feed.NewFeedCmd(env))

	rootCmd.AddCommand(NewLoadCmd(env))
	rootCmd.AddCommand(NewInfoCmd(env))
	rootCmd.AddCommand(NewUICmd(env))

	// shortcuts
	findCmd := transaction.NewShowCmd(env)
	findCmd.Use = "find <account> <number>"
	rootCmd.AddCommand(findCmd)

	listCmd := transaction.NewListCmd(env)
	listCmd.Use = "list <account>"
	rootCmd.AddCommand(listCmd)

	accountsCmd := account.NewListCmd(env)
	accountsCmd.Use = "accounts"
	rootCmd.AddCommand(accountsCmd)

	rootCmd.AddCommand(account.NewAverageCmd(env))

	return rootCmd
}
