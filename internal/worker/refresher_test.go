package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/worker"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

type sessionStub struct {
	mu    sync.Mutex
	errs  []error
	calls int
}

func (s *sessionStub) Refresh(context.Context) (service.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.calls < len(s.errs) {
		err = s.errs[s.calls]
	}
	s.calls++

	return service.State{Calculated: err == nil}, err
}

func (s *sessionStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type notifierStub struct {
	mu        sync.Mutex
	failed    []error
	recovered int
}

func (n *notifierStub) RefreshFailed(_ context.Context, err error) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failed = append(n.failed, err)
	return nil
}

func (n *notifierStub) RefreshRecovered(context.Context, service.State) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recovered++
	return errors.New("chat unreachable")
}

func (n *notifierStub) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.failed), n.recovered
}

func TestRefresherStartStop(t *testing.T) {
	rq := require.New(t)

	session := &sessionStub{}
	refresher := worker.NewRefresher(session, 5*time.Millisecond)

	rq.NoError(refresher.Start(context.Background()))
	rq.True(refresher.IsRunning())
	rq.ErrorIs(refresher.Start(context.Background()), worker.ErrAlreadyRunning)

	rq.Eventually(func() bool { return session.Calls() >= 2 }, time.Second, time.Millisecond)

	refresher.Stop()
	rq.False(refresher.IsRunning())

	calls := session.Calls()
	time.Sleep(20 * time.Millisecond)
	rq.Equal(calls, session.Calls())

	// Stop twice is fine.
	refresher.Stop()
}

func TestRefresherDisabled(t *testing.T) {
	rq := require.New(t)

	refresher := worker.NewRefresher(&sessionStub{}, 0)

	rq.ErrorIs(refresher.Start(context.Background()), worker.ErrDisabled)
	rq.False(refresher.IsRunning())
}

func TestRefresherNotifications(t *testing.T) {
	rq := require.New(t)

	rateLimited := domain.NewError(errcodes.FeedRateLimited, "rate limited")
	session := &sessionStub{
		errs: []error{
			rateLimited,
			rateLimited,
			domain.ErrCalculationInProgress,
			nil,
			nil,
		},
	}
	notifier := &notifierStub{}

	refresher := worker.NewRefresher(session, 2*time.Millisecond).WithNotifier(notifier)

	rq.NoError(refresher.Start(context.Background()))
	rq.Eventually(func() bool { return session.Calls() >= 5 }, time.Second, time.Millisecond)
	refresher.Stop()

	failed, recovered := notifier.counts()
	rq.Equal(1, failed)
	rq.Equal(1, recovered)
}

func TestRefresherServe(t *testing.T) {
	rq := require.New(t)

	session := &sessionStub{}
	refresher := worker.NewRefresher(session, 2*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- refresher.Serve(ctx, true) }()

	rq.Eventually(func() bool { return session.Calls() >= 1 }, time.Second, time.Millisecond)

	cancel()

	select {
	case err := <-done:
		rq.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}

	rq.False(refresher.IsRunning())
}
