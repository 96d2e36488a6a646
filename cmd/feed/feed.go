package feed

import (
	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/spf13/cobra"
)

func NewFeedCmd(env *cmdutil.Env) *cobra.Command {
	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Import, list and delete stored input batches",
		Long: `The feed keeps raw input batches in a sqlite database so they can be
loaded again with --batch <name> or --source feed:<name>.`,
	}

	feedCmd.AddCommand(NewImportCmd(env))
	feedCmd.AddCommand(NewListCmd(env))
	feedCmd.AddCommand(NewDeleteCmd(env))

	return feedCmd
}
