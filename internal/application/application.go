package application

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"num_market/internal/config"
	"num_market/internal/infrastructure/inventory"
	"num_market/internal/server"
	"num_market/pkg/application/modules"
	"num_market/pkg/contextx"
	"num_market/pkg/logx"
	"num_market/pkg/metrics"
)

// Application прокси сервиса номеров вместе с probe и metrics серверами.
type Application struct {
	cfg config.Config
}

func New(cfg config.Config) Application {
	return Application{cfg: cfg}
}

// Run запускает все модули и ждёт их остановки. Модули останавливаются при
// отмене ctx или при ошибке любого из них.
func (a Application) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	registry := metrics.NewRegistry()

	inventoryClient := inventory.NewClient(a.cfg.Inventory, a.cfg.HTTP.LogFieldMaxLen)

	numbersServer := server.NewNumbersServer(
		inventoryClient,
		a.cfg.HTTP.MaxBodyBytes,
		server.NewMetrics(registry),
	)

	router := server.NewRouter(server.NewServer(numbersServer), a.cfg.HTTP.LogFieldMaxLen)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              a.cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: a.cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          a.cfg.App.Name,
		Version:       a.cfg.App.Version,
		ListenAddress: a.cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: a.cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	logger(ctx).Info(
		"application started",
		slog.String(logx.FieldAppName, a.cfg.App.Name),
		slog.String(logx.FieldAppVersion, a.cfg.App.Version),
		slog.String(logx.FieldURL, a.cfg.Inventory.URL),
	)

	return g.Wait() //nolint:wrapcheck
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
