package application

import (
	"context"
	"fmt"

	"github.com/SuperOrca/sbshards/internal/config"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/infrastructure/bazaar"
	"github.com/SuperOrca/sbshards/internal/infrastructure/catalog"
	"github.com/SuperOrca/sbshards/internal/infrastructure/preference"
	"github.com/SuperOrca/sbshards/pkg/application/connectors"
)

// Connectors holds the lazily opened backends. Only the one picked by
// PREFERENCES_BACKEND is ever dialed.
type Connectors struct {
	Postgres *connectors.Postgres
	Redis    *connectors.Redis
}

func NewConnectors(cfg config.Config) *Connectors {
	return &Connectors{
		Postgres: &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		},
		Redis: &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		},
	}
}

func (c *Connectors) Close(ctx context.Context) {
	c.Postgres.Close(ctx)
	c.Redis.Close(ctx)
}

// NewSession builds a session over the configured catalog, price feed and
// preference backend. The caller runs Init.
func NewSession(ctx context.Context, cfg config.Config, conns *Connectors) (*service.Session, error) {
	store, err := NewPreferenceStore(ctx, cfg, conns)
	if err != nil {
		return nil, err
	}

	feed := bazaar.NewClient(bazaar.Options{
		URL:            cfg.Bazaar.URL,
		Timeout:        cfg.Bazaar.Timeout,
		RetryMax:       cfg.Bazaar.RetryMax,
		RetryWaitMin:   cfg.Bazaar.RetryWaitMin,
		RetryWaitMax:   cfg.Bazaar.RetryWaitMax,
		LogFieldMaxLen: cfg.Bazaar.LogFieldMaxLen,
	}, logger(ctx))

	loader := catalog.NewLoader(cfg.Catalog.Source).WithHTTPClient(catalog.NewHTTPClient(catalog.HTTPOptions{
		Timeout:  cfg.Catalog.Timeout,
		RetryMax: cfg.Catalog.RetryMax,
	}))

	return service.NewSession(
		loader,
		feed,
		preference.NewExclusionRepository(store, cfg.Preferences.Key),
	), nil
}

func NewPreferenceStore(ctx context.Context, cfg config.Config, conns *Connectors) (preference.Store, error) {
	switch cfg.Preferences.Backend {
	case config.BackendFile:
		return preference.NewFileStore(cfg.Preferences.Dir), nil
	case config.BackendMemory:
		return preference.NewMemoryStore(), nil
	case config.BackendRedis:
		return preference.NewRedisStore(conns.Redis.Client(ctx), cfg.Redis.KeyPrefix), nil
	case config.BackendPostgres:
		return preference.NewPostgresStore(conns.Postgres.Client(ctx)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Preferences.Backend)
	}
}
