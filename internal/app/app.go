// Package app wires configuration, logging, metrics and the calculator
// engine into the executable's run modes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/server"
	"github.com/agbru/bignum/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Registry
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line
// arguments. args includes the program name in position 0.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg, err := config.ParseConfig(fs, cmdArgs)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	return &Application{
		Config:    cfg,
		Logger:    newLogger(level),
		Metrics:   metrics.NewRegistry(),
		ErrWriter: errWriter,
	}, nil
}

// newLogger builds the application logger at the configured level.
func newLogger(level string) logging.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()
	return logging.NewZerologAdapter(zl)
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(false)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, a.Metrics.Gatherer(), a.Logger)
		go func() {
			if err := srv.Run(ctx); err != nil {
				a.Logger.Error("metrics server failed", err)
			}
		}()
	}

	switch a.Config.Op {
	case "repl":
		return a.runREPL(out)
	case "verify":
		return a.runVerify(ctx, out)
	default:
		return a.runCalculate(ctx, out)
	}
}

// runREPL starts the interactive session.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{FullValue: a.Config.FullValue}, os.Stdin, out)
	if err := repl.Run(); err != nil {
		fmt.Fprintf(a.ErrWriter, "REPL error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
