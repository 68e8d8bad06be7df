package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"num_market/internal/config"
	"num_market/internal/infrastructure/numbersapi"
	"num_market/internal/transport/tui"
	"num_market/pkg/contextx"
	"num_market/pkg/logx"
)

const logFileMode = 0o600

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "browser failed: %v\n", err)
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

	// Терминал занят интерфейсом, поэтому лог пишем в файл.
	logFile, err := os.OpenFile(cfg.Browser.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return fmt.Errorf("os.OpenFile: %w", err)
	}

	defer logFile.Close()

	log := logx.New(logFile, level, false)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log.With(slog.String("api", cfg.Browser.APIURL)))

	client := numbersapi.NewClient(cfg.Browser.APIURL, &http.Client{
		Timeout: cfg.Browser.RequestTimeout,
	})

	model := tui.New(ctx, client, tui.Options{
		PrefetchDistance: cfg.Browser.PrefetchDistance,
		RequestTimeout:   cfg.Browser.RequestTimeout,
	})

	log.Info("browser started")

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("program.Run: %w", err)
	}

	log.Info("browser stopped")

	return nil
}
