package check

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	openaiAPI "github.com/myyachtvalue/modelsvc/internal/openai"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/render"
)

// checkOptions type is used to describe 'check' command options.
type checkOptions struct {
	openAI   openaiAPI.API
	renderer render.Renderer
	timeout  time.Duration
}

// NewCheckCommand creates 'check' command for CLI.
func NewCheckCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:                   "check [FLAGS]",
		Short:                 "Checks that Open AI API is reachable and serves configured model",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.openAI = cliOpts.OpenAI()
			opts.renderer = cliOpts.Renderer()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.Flags().DurationVarP(
		&opts.timeout,
		commands.CheckTimeoutFlag,
		commands.CheckTimeoutShortFlag,
		commands.CheckTimeoutDefaultValue,
		commands.CheckTimeoutUsage,
	)

	return cmd
}

// runCheck executes a `check` command.
func runCheck(ctx context.Context, out io.Writer, opts *checkOptions) error {
	baseURL := opts.openAI.GetBaseURL()
	model := opts.openAI.GetModel()

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	var (
		available []openai.Model
		err       error
	)

	opts.renderer.WithSpinner(fmt.Sprintf("Checking Open AI API at %s", baseURL), func() {
		available, err = opts.openAI.Models(timeoutCtx)
	})

	if err != nil {
		return errors.WithMessagef(err, "Open AI API at %s is unreachable", baseURL)
	}

	found := slices.ContainsFunc(available, func(m openai.Model) bool {
		return m.ID == model
	})

	if !found {
		return errors.Errorf("model %q is not available at %s", model, baseURL)
	}

	_, _ = fmt.Fprintf(out, "Open AI API at %s is reachable, model %q is available\n", baseURL, model)

	return nil
}
