package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/myyachtvalue/modelsvc/internal/service/cli"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
)

type App struct {
	cliOpts *options.CliOptions
	cli     *cli.Cli
}

func NewApp(version string) *App {
	cliOpts := options.NewCliOptions(version)
	modelsvcCli := cli.NewCli(cliOpts)
	modelsvcCli.MustSetup()

	return &App{
		cliOpts: cliOpts,
		cli:     modelsvcCli,
	}
}

// Run executes CLI until it finishes or process receives a termination signal.
func (a *App) Run() {
	ctx, cancelCtx := a.notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	if err := a.cli.Run(ctx); err != nil {
		cancelCtx(err)
	}

	//nolint:errorlint
	switch err := context.Cause(ctx); err.(type) {
	case nil:
	case *SignalError:
		slog.Warn("modelsvc stopped", slog.String("cause", err.Error()))
	default:
		slog.Error("modelsvc failed", slog.String("error", err.Error()))

		if a.cliOpts.DebugMode() {
			logStackTrace(err)
		}

		os.Exit(1)
	}
}

// notifyContext returns context canceled by the first signal, the second signal terminates process.
func (a *App) notifyContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelCauseFunc) {
	osSignalChannel := make(chan os.Signal, 1)
	signal.Notify(osSignalChannel, signals...)

	ctxCause, cancelCtx := context.WithCancelCause(ctx)

	go func() {
		osSignal := <-osSignalChannel
		slog.Info("got os signal, canceling", slog.String("signal", osSignal.String()))
		cancelCtx(&SignalError{Signal: osSignal})

		osSignal = <-osSignalChannel
		slog.Error("got os signal, force exit", slog.String("signal", osSignal.String()))
		os.Exit(1)
	}()

	return ctxCause, cancelCtx
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// logStackTrace logs frames of the innermost pkg/errors stack, file and line on separate records.
func logStackTrace(err error) {
	if e, ok := errors.Cause(err).(stackTracer); ok {
		for _, frame := range e.StackTrace() {
			frameTrace := strings.Split(fmt.Sprintf("%+v", frame), "\n")
			slog.Error(frameTrace[0])

			if len(frameTrace) > 1 {
				slog.Error(frameTrace[1])
			}
		}
	}
}
