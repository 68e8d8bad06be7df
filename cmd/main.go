package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"num_market/internal/application"
	"num_market/internal/config"
	"num_market/pkg/contextx"
	"num_market/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level, err := logx.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("logx.ParseLevel: %w", err)
	}

	log := logx.New(os.Stdout, level, isatty.IsTerminal(os.Stdout.Fd()))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.New(cfg).Run(ctx); err != nil {
		return fmt.Errorf("application.Run: %w", err)
	}

	log.Info("application stopped")

	return nil
}
