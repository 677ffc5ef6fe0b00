// Command export refreshes prices once and writes the ranking as CSV.
//
//	go run ./cmd/export [-view instaBuy|buyOrder] [-o file.csv]
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
	"time"

	"github.com/SuperOrca/sbshards/internal/application"
	"github.com/SuperOrca/sbshards/internal/config"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/internal/infrastructure/export"
	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

func main() {
	viewFlag := flag.String("view", string(value.ViewInstaBuy), "ranking to export: instaBuy or buyOrder")
	outFlag := flag.String("o", "", "output file, - for stdout (default shard_costs_<date>.csv)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.NewLogger(os.Stderr, cfg.App.LogLevel, cfg.App.LogFormat)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, cfg, *viewFlag, *outFlag); err != nil {
		log.Error("export failed", logx.Error(err))
		fmt.Fprintln(os.Stderr, service.UserMessage(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, cfg config.Config, viewName, out string) error {
	view, err := value.ParseView(viewName)
	if err != nil {
		return fmt.Errorf("value.ParseView: %w", err)
	}

	conns := application.NewConnectors(cfg)
	defer conns.Close(ctx)

	session, err := application.NewSession(ctx, cfg, conns)
	if err != nil {
		return err
	}

	if err := session.Init(ctx); err != nil {
		return fmt.Errorf("session.Init: %w", err)
	}

	if _, err := session.Refresh(ctx); err != nil {
		return fmt.Errorf("session.Refresh: %w", err)
	}

	state := session.SelectView(view)

	if out == "" {
		out = export.FileName(time.Now())
	}

	var w io.Writer = os.Stdout

	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("os.Create: %w", err)
		}
		defer f.Close()

		w = f
	}

	if err := export.WriteCSV(w, state.Rows); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}

	slog.InfoContext(ctx, "export written", slog.String("file", out), slog.Int(logx.FieldCount, len(state.Rows)))

	return nil
}
