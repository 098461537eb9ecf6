package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	openaiAPI "github.com/myyachtvalue/modelsvc/internal/openai/general"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands/root"
	clierrors "github.com/myyachtvalue/modelsvc/internal/service/cli/errors"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/render/prompt"
	"github.com/myyachtvalue/modelsvc/internal/service/logger/handlers"
	"github.com/myyachtvalue/modelsvc/internal/service/models"
)

// Cli type is used to describe modelsvc CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  root.NewRootCommand(opts),
	}
}

// MustSetup configures CLI using process arguments and exits on failure.
func (cli *Cli) MustSetup() {
	err := cli.Setup(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

// Setup parses root flags from args and initializes CLI state.
func (cli *Cli) Setup(args []string) error {
	err := cli.handleAppFlags(args)
	if err != nil {
		return err
	}

	return cli.initialize()
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// SetArgs sets arguments for root command, process arguments are used by default.
func (cli *Cli) SetArgs(args []string) {
	cli.cmd.SetArgs(args)
}

// handleAppFlags parses flags of root command before executing it.
func (cli *Cli) handleAppFlags(args []string) error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(args); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	return nil
}

// initialize configures the CLI using env files, config file, environment and flags.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	rootOpts := cliOpts.RootOpts()

	// set tty mode
	if !*rootOpts.NoTTY.Changed && !*rootOpts.TTY.Changed {
		cliOpts.SetUseTTY(rootOpts.TTY.Value)
	} else {
		cliOpts.SetUseTTY(*rootOpts.TTY.Changed)
	}

	err := loadEnvFiles(cliOpts)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	err = appConfig.Load(cliOpts.Fs(), rootOpts.ConfigPath)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	mergeFlags(appConfig, rootOpts)

	setupLogger(cliOpts, appConfig.LogFormat)

	if appConfig.OpenAI.APIKey == "" {
		slog.Warn("Open AI API key is not set, requests to Open AI API will fail")
	}

	cliOpts.SetRenderer(prompt.NewRenderer(cliOpts.Out(), cliOpts.UseTTY()))

	// client is built once and shared by all commands
	cliOpts.SetOpenAI(openaiAPI.NewOpenAIAPI(appConfig.OpenAI))

	return nil
}

func loadEnvFiles(cliOpts *options.CliOptions) error {
	envFile := cliOpts.RootOpts().EnvFile
	if envFile != "" {
		return models.LoadEnvFiles(cliOpts.Fs(), true, envFile)
	}

	return models.LoadEnvFiles(cliOpts.Fs(), false, models.DefaultEnvFile)
}

// mergeFlags overrides config values with values of root flags.
func mergeFlags(appConfig *models.AppConfig, rootOpts *options.RootOptions) {
	if rootOpts.OpenAIAPIKey != "" {
		appConfig.OpenAI.APIKey = rootOpts.OpenAIAPIKey
	}

	if rootOpts.OpenAIBaseURL != "" {
		appConfig.OpenAI.BaseURL = rootOpts.OpenAIBaseURL
	}

	// explicitly passed empty model is kept
	if model := rootOpts.OpenAIModel; model.Changed != nil && *model.Changed {
		appConfig.OpenAI.Model = model.Value
	}
}

func setupLogger(cliOpts *options.CliOptions, logFormat string) {
	logLevel := slog.LevelInfo
	if cliOpts.DebugMode() {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler

	if logFormat == "json" {
		logHandler = slog.NewJSONHandler(cliOpts.Out(), handlerOpts)
	} else {
		logHandler = handlers.NewTextHandler(cliOpts.Out(), handlerOpts)
	}

	slog.SetDefault(slog.New(logHandler))
}
