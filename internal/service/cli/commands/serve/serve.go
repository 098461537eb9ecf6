package serve

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/myyachtvalue/modelsvc/internal/openai"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
	"github.com/myyachtvalue/modelsvc/internal/service/models"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	openAI openai.API
	http   models.HTTPConfig
}

// NewServeCommand creates 'serve' command running the health service until the command context is canceled.
func NewServeCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:                   "serve [FLAGS]",
		Short:                 "Serves GET /health with the configured model name",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.openAI = cliOpts.OpenAI()
			opts.http = mergeHTTPConfig(opts.http, cliOpts.AppConfig().HTTPConfig)

			slog.Debug("starting health service", slog.String("version", cliOpts.Version()))

			return errors.WithMessage(runServe(cmd.Context(), opts), "health service")
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

// setupFlags binds 'serve' flags directly to the HTTP config they override.
func setupFlags(flags *pflag.FlagSet, opts *serveOptions) {
	flags.StringVarP(
		&opts.http.ListenAddress,
		commands.HTTPListenAddressFlag,
		commands.HTTPListenAddressShortFlag,
		"",
		commands.HTTPListenAddressUsage,
	)

	for _, f := range []struct {
		target            *time.Duration
		name, short, desc string
	}{
		{&opts.http.ReadTimeout, commands.HTTPReadTimeoutFlag, commands.HTTPReadTimeoutShortFlag, commands.HTTPReadTimeoutUsage},
		{&opts.http.WriteTimeout, commands.HTTPWriteTimeoutFlag, commands.HTTPWriteTimeoutShortFlag, commands.HTTPWriteTimeoutUsage},
		{&opts.http.IdleTimeout, commands.HTTPIdleTimeoutFlag, commands.HTTPIdleTimeoutShortFlag, commands.HTTPIdleTimeoutUsage},
	} {
		flags.DurationVarP(f.target, f.name, f.short, 0, f.desc)
	}
}

// mergeHTTPConfig returns flag values, zero ones are taken from config.
func mergeHTTPConfig(fromFlags, fromConfig models.HTTPConfig) models.HTTPConfig {
	merged := fromFlags

	if merged.ListenAddress == "" {
		merged.ListenAddress = fromConfig.ListenAddress
	}

	for _, pair := range [][2]*time.Duration{
		{&merged.ReadTimeout, &fromConfig.ReadTimeout},
		{&merged.WriteTimeout, &fromConfig.WriteTimeout},
		{&merged.IdleTimeout, &fromConfig.IdleTimeout},
	} {
		if *pair[0] == 0 {
			*pair[0] = *pair[1]
		}
	}

	return merged
}

func newHTTPServer(opts *serveOptions) *http.Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupMiddleware(e)
	setupRoutes(handlerOptions{openAI: opts.openAI}, e)

	return &http.Server{
		Handler:      e,
		ReadTimeout:  opts.http.ReadTimeout,
		WriteTimeout: opts.http.WriteTimeout,
		IdleTimeout:  opts.http.IdleTimeout,
	}
}

// runServe binds the listen address and serves until ctx is canceled.
// In-flight requests get shutdownTimeout to complete.
func runServe(ctx context.Context, opts *serveOptions) error {
	listener, err := net.Listen("tcp", opts.http.ListenAddress)
	if err != nil {
		return errors.WithMessagef(err, "failed to listen on %q", opts.http.ListenAddress)
	}

	server := newHTTPServer(opts)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("health service shutdown interrupted", slog.String("error", err.Error()))
		}
	}()

	slog.Info("health service is listening",
		slog.String("address", listener.Addr().String()),
		slog.Duration("read-timeout", opts.http.ReadTimeout),
		slog.Duration("write-timeout", opts.http.WriteTimeout),
		slog.Duration("idle-timeout", opts.http.IdleTimeout),
	)

	if err = server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	<-stopped

	slog.Info("health service stopped")

	return nil
}
