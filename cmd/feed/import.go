package feed

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hance08/txindex/cmd/cmdutil"
	"github.com/hance08/txindex/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type importFlags struct {
	Name string
}

type ImportCommandRunner struct {
	env   *cmdutil.Env
	flags *importFlags
}

func NewImportCmd(env *cmdutil.Env) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Store a batch file in the feed",
		Long: `Store a .csv, .json or .yaml batch in the feed database.
The batch is named after the file unless --name is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ImportCommandRunner{
				env:   env,
				flags: flags,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "batch name (defaults to the file name without extension)")

	return cmd
}

func (r *ImportCommandRunner) Run(ctx context.Context, file string) error {
	path, err := config.ExpandPath(file)
	if err != nil {
		return err
	}

	name := r.flags.Name
	if name == "" {
		name = BatchNameFromPath(path)
	}

	info, err := r.env.Service().Feed.Import(ctx, name, path)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Imported %d records as batch '%s'\n", info.Records, info.Name)
	return nil
}

func BatchNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
