package handler

import (
	"context"
	"time"

	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Session interface {
	Refresh(ctx context.Context) (service.State, error)
	State() service.State
	SelectView(view value.View) service.State
	ToggleExclusion(ctx context.Context, name string) (bool, service.State, error)
	Exclusions() []string
	ClearExclusions(ctx context.Context) (service.State, error)
	ResetPreferences(ctx context.Context) (service.State, error)
}

type Refresher interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
	Interval() time.Duration
}

type Handler struct {
	session   Session
	refresher Refresher
	now       func() time.Time

	// base outlives single updates; the refresher loop is bound to it.
	base context.Context
}

func New(session Session, refresher Refresher) *Handler {
	return &Handler{
		session:   session,
		refresher: refresher,
		now:       time.Now,
		base:      context.Background(),
	}
}

func (h *Handler) WithBaseContext(ctx context.Context) *Handler {
	h.base = ctx
	return h
}
