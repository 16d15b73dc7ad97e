package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"forest-fire/internal/app"
	"forest-fire/internal/ctxlog"

	"github.com/pkg/errors"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// run loads the configuration, lights the forest and plays it to the end.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, err := app.Loader{Name: "forestfire", Output: stderr}.Load(args)
	if err != nil {
		return err
	}

	logger, err := ctxlog.New(stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return &app.ExitError{Code: 2, Err: err}
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	runner, err := app.NewRunner(cfg, stdout)
	if err != nil {
		return err
	}
	if _, err := runner.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", "generation", runner.Forest.Generation())
			return nil
		}
		return err
	}
	return nil
}
