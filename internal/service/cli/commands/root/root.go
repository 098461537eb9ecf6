package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands/check"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands/serve"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands/version"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/streams"
)

// NewRootCommand creates 'modelsvc' command with 'serve', 'check' and 'version' sub commands.
func NewRootCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Use:                   "modelsvc [FLAGS] [COMMAND]",
		Short:                 "Health service for Open AI model backend",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetOut(cliOpts.Out())
	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)

	setupFlags(cmd.Flags(), cliOpts.RootOpts(), cliOpts.In())

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.MarkFlagsMutuallyExclusive(commands.TTYFlag, commands.NoTTYFlag)

	cmd.AddCommand(
		serve.NewServeCommand(cliOpts),
		check.NewCheckCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

type stringFlag struct {
	target *string
	name   string
	short  string
	usage  string
}

// setupFlags binds global flags to RootOptions. Flags that need to distinguish
// "not passed" from "passed empty" keep a pointer to pflag's Changed marker.
func setupFlags(flags *pflag.FlagSet, opts *options.RootOptions, in *streams.In) {
	for _, f := range []stringFlag{
		{&opts.ConfigPath, commands.ConfigPathFlag, commands.ConfigPathShortFlag, commands.ConfigPathUsage},
		{&opts.EnvFile, commands.EnvFileFlag, commands.EnvFileShortFlag, commands.EnvFileUsage},
		{&opts.OpenAIAPIKey, commands.OpenAIAPIKeyFlag, commands.OpenAIAPIKeyShortFlag, commands.OpenAIAPIKeyUsage},
		{&opts.OpenAIBaseURL, commands.OpenAIBaseURLFlag, commands.OpenAIBaseURLShortFlag, commands.OpenAIBaseURLUsage},
		{&opts.OpenAIModel.Value, commands.OpenAIModelFlag, commands.OpenAIModelShortFlag, commands.OpenAIModelUsage},
	} {
		flags.StringVarP(f.target, f.name, f.short, "", f.usage)
	}

	opts.OpenAIModel.Changed = &flags.Lookup(commands.OpenAIModelFlag).Changed

	flags.BoolVarP(&opts.TTY.Value, commands.TTYFlag, commands.TTYShortFlag, in.IsTerminal(), commands.TTYUsage)
	opts.TTY.Changed = &flags.Lookup(commands.TTYFlag).Changed

	flags.BoolVarP(&opts.NoTTY.Value, commands.NoTTYFlag, commands.NoTTYShortFlag, false, commands.NoTTYUsage)
	opts.NoTTY.Changed = &flags.Lookup(commands.NoTTYFlag).Changed

	flags.BoolVarP(&opts.DebugMode, commands.DebugModeFlag, commands.DebugModeShortFlag, false, commands.DebugModeUsage)
}
