package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SuperOrca/sbshards/internal/domain"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

var (
	ErrAlreadyRunning = errors.New("refresher is already running")
	ErrDisabled       = errors.New("refresher interval is not set")
)

type Session interface {
	Refresh(ctx context.Context) (service.State, error)
}

// Notifier is told when a periodic refresh fails and when the feed
// recovers after a failure.
type Notifier interface {
	RefreshFailed(ctx context.Context, err error) error
	RefreshRecovered(ctx context.Context, state service.State) error
}

type nopNotifier struct{}

func (nopNotifier) RefreshFailed(context.Context, error) error            { return nil }
func (nopNotifier) RefreshRecovered(context.Context, service.State) error { return nil }

// Refresher re-runs the price refresh on a fixed interval.
type Refresher struct {
	session  Session
	notifier Notifier
	interval time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	failing    bool
	wg         sync.WaitGroup
}

func NewRefresher(session Session, interval time.Duration) *Refresher {
	return &Refresher{
		session:  session,
		notifier: nopNotifier{},
		interval: interval,
	}
}

func (w *Refresher) WithNotifier(notifier Notifier) *Refresher {
	if notifier != nil {
		w.notifier = notifier
	}
	return w
}

func (w *Refresher) Interval() time.Duration {
	return w.interval
}

// Start launches the loop in the background. The loop lives until Stop is
// called or ctx is done.
func (w *Refresher) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return ErrDisabled
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return ErrAlreadyRunning
	}

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("refresher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *Refresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Refresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run refreshes once per interval until ctx is done. The first refresh
// happens after one full interval.
func (w *Refresher) Run(ctx context.Context) error {
	logger(ctx).Info("refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// Serve is the module entry point: it optionally starts the loop and stops
// it once ctx is done.
func (w *Refresher) Serve(ctx context.Context, autoStart bool) error {
	if autoStart {
		if err := w.Start(ctx); err != nil && !errors.Is(err, ErrDisabled) {
			return err
		}
	}

	<-ctx.Done()
	w.Stop()

	return ctx.Err()
}

func (w *Refresher) tick(ctx context.Context) {
	state, err := w.session.Refresh(ctx)

	switch {
	case err == nil:
		if w.failing {
			w.failing = false
			w.notify(ctx, w.notifier.RefreshRecovered(ctx, state))
		}
	case errors.Is(err, domain.ErrCalculationInProgress):
		logger(ctx).Debug("refresh skipped, another one is running")
	case errors.Is(err, context.Canceled):
	default:
		if domain.IsTransient(err) {
			logger(ctx).Warn("periodic refresh failed, will retry", logx.Error(err))
		} else {
			logger(ctx).Error("periodic refresh failed", logx.Error(err))
		}

		if !w.failing {
			w.failing = true
			w.notify(ctx, w.notifier.RefreshFailed(ctx, err))
		}
	}
}

func (w *Refresher) notify(ctx context.Context, err error) {
	if err != nil {
		logger(ctx).Warn("refresh notification not sent", logx.Error(err))
	}
}
