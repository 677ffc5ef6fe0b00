package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Background runs a long-lived loop such as the bot poller or the
// refresher. A loop returning context.Canceled is a normal stop.
type Background struct {
	Name string
}

func (b Background) Run(ctx context.Context, g *errgroup.Group, run func(context.Context) error) {
	g.Go(func() error {
		logger(ctx).Info("module started", slog.String("module", b.Name))

		if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s: %w", b.Name, err)
		}

		logger(ctx).Info("module stopped", slog.String("module", b.Name))

		return nil
	})
}
