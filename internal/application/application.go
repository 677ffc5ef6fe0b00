// Package application wires the shard session to its adapters and runs
// every module until the context is done.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/SuperOrca/sbshards/internal/config"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/infrastructure/notifier"
	"github.com/SuperOrca/sbshards/internal/metrics"
	"github.com/SuperOrca/sbshards/internal/server"
	"github.com/SuperOrca/sbshards/internal/transport/bot"
	"github.com/SuperOrca/sbshards/internal/worker"
	"github.com/SuperOrca/sbshards/pkg/application/modules"
	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const httpReadHeaderTimeout = 10 * time.Second

func Run(ctx context.Context, cfg config.Config) error {
	conns := NewConnectors(cfg)
	defer conns.Close(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	session, err := NewSession(ctx, cfg, conns)
	if err != nil {
		return err
	}

	session.WithRecorder(metrics.NewRecorder(registry))

	if err := session.Init(ctx); err != nil {
		logger(ctx).Warn("catalog not loaded, next refresh retries", logx.Error(err))
	}

	refresher := worker.NewRefresher(session, cfg.Refresh.Interval)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.BotEnabled() {
		if err := runBot(ctx, g, cfg, session, refresher); err != nil {
			return err
		}
	}

	modules.Background{Name: "initial-refresh"}.Run(ctx, g, func(ctx context.Context) error {
		if _, err := session.Refresh(ctx); err != nil {
			logger(ctx).Warn("initial refresh failed", logx.Error(err))
		}
		return nil
	})

	modules.Background{Name: "refresher"}.Run(ctx, g, func(ctx context.Context) error {
		return refresher.Serve(ctx, true)
	})

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           server.NewServer(server.NewShardServer(session)).Handler(cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         ready(session),
	}.Run(ctx, g)

	logger(ctx).Info(
		"application started",
		slog.String("preferences", cfg.Preferences.Backend),
		slog.Bool("bot", cfg.BotEnabled()),
		slog.Duration("refresh-interval", cfg.Refresh.Interval),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func runBot(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Config,
	session *service.Session,
	refresher *worker.Refresher,
) error {
	alerts, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.AdminID)
	if err != nil {
		return fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	refresher.WithNotifier(alerts)

	tgBot, err := bot.New(bot.Options{Token: cfg.Bot.Token, AdminID: cfg.Bot.AdminID}, session, refresher)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	modules.Background{Name: "bot"}.Run(ctx, g, tgBot.Run)

	return nil
}

// ready turns true once the catalog is loaded and a refresh succeeded.
func ready(session *service.Session) func() bool {
	return func() bool {
		state := session.State()
		return state.Calculated && state.Stats.TotalShards > 0
	}
}
