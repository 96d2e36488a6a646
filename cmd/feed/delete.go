package feed

import (
	"context"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type DeleteCommandRunner struct {
	env   *cmdutil.Env
	flags *deleteFlags
}

func NewDeleteCmd(env *cmdutil.Env) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an imported batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{
				env:   env,
				flags: flags,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (r *DeleteCommandRunner) Run(ctx context.Context, name string) error {
	if !r.flags.Yes {
		confirm, err := prompts.PromptConfirm("Delete batch '"+name+"'?", false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Nothing deleted")
			return nil
		}
	}

	if err := r.env.Service().Feed.Delete(ctx, name); err != nil {
		return err
	}

	pterm.Success.Printf("Batch '%s' deleted\n", name)
	return nil
}
