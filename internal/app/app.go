// Package app wires configuration, logging, presentation and the benchmark
// harness into the vecbench command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/vecbench/internal/cli"
	"github.com/agbru/vecbench/internal/config"
	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/logging"
	"github.com/agbru/vecbench/internal/tui"
	"github.com/agbru/vecbench/internal/ui"
)

// Application represents the vecbench application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    *logging.ZerologAdapter
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "vecbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    newLogger(errWriter, cfg),
	}, nil
}

// newLogger returns a console logger on w. The level is Info, Debug with
// -v, and disabled with -q.
func newLogger(w io.Writer, cfg config.AppConfig) *logging.ZerologAdapter {
	level := zerolog.InfoLevel
	switch {
	case cfg.Quiet:
		level = zerolog.Disabled
	case cfg.Verbose:
		level = zerolog.DebugLevel
	}
	return logging.NewConsoleLogger(w, level, cfg.NoColor)
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runBenchmark(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	return tui.Run(ctx, a.Config, a.benchOptions(), Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
