package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
)

// NewVersionCommand creates 'version' command for CLI.
func NewVersionCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		Short:                 "Show modelsvc version",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "modelsvc version "+cliOpts.Version())
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}
