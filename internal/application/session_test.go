package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/application"
	"github.com/SuperOrca/sbshards/internal/config"
	"github.com/SuperOrca/sbshards/internal/infrastructure/preference"
)

func TestNewPreferenceStore(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cfg := config.Config{Preferences: config.Preferences{Backend: config.BackendFile, Dir: t.TempDir()}}
	conns := application.NewConnectors(cfg)
	defer conns.Close(ctx)

	store, err := application.NewPreferenceStore(ctx, cfg, conns)
	rq.NoError(err)
	rq.IsType(&preference.FileStore{}, store)

	cfg.Preferences.Backend = config.BackendMemory
	store, err = application.NewPreferenceStore(ctx, cfg, conns)
	rq.NoError(err)
	rq.IsType(&preference.MemoryStore{}, store)

	cfg.Preferences.Backend = "sqlite"
	_, err = application.NewPreferenceStore(ctx, cfg, conns)
	rq.ErrorIs(err, config.ErrUnknownBackend)
}

func TestNewSession(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	cfg := config.Config{
		Catalog:     config.Catalog{Source: "missing.json"},
		Preferences: config.Preferences{Backend: config.BackendMemory, Key: "ignoredShards"},
	}
	conns := application.NewConnectors(cfg)

	session, err := application.NewSession(ctx, cfg, conns)
	rq.NoError(err)

	rq.Error(session.Init(ctx))
	rq.False(session.State().Calculated)
}
