package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("sbshards", cfg.App.Name)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("shards.json", cfg.Catalog.Source)
	rq.Equal(10*time.Second, cfg.Catalog.Timeout)
	rq.Equal("https://api.hypixel.net/v2/skyblock/bazaar", cfg.Bazaar.URL)
	rq.Equal(2, cfg.Bazaar.RetryMax)
	rq.Equal(config.BackendFile, cfg.Preferences.Backend)
	rq.Equal("ignoredShards", cfg.Preferences.Key)
	rq.Equal("sbshards:", cfg.Redis.KeyPrefix)
	rq.Equal(time.Duration(0), cfg.Refresh.Interval)
	rq.False(cfg.BotEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Chdir(t.TempDir())
	t.Setenv("PREFERENCES_BACKEND", "redis")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("BOT_ADMIN_ID", "1217838677")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(config.BackendRedis, cfg.Preferences.Backend)
	rq.Equal(5*time.Minute, cfg.Refresh.Interval)
	rq.Equal(int64(1217838677), cfg.Bot.AdminID)
	rq.True(cfg.BotEnabled())
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Catalog:     config.Catalog{Source: "shards.json"},
			Preferences: config.Preferences{Backend: config.BackendFile, Key: "ignoredShards", Dir: ".sbshards"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *config.Config) { c.Preferences.Backend = "sqlite" },
			wantErr: config.ErrUnknownBackend,
		},
		{
			name:    "redis without address",
			mutate:  func(c *config.Config) { c.Preferences.Backend = config.BackendRedis },
			wantErr: config.ErrMissingSetting,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *config.Config) { c.Preferences.Backend = config.BackendPostgres },
			wantErr: config.ErrMissingSetting,
		},
		{
			name:   "memory needs nothing",
			mutate: func(c *config.Config) { c.Preferences = config.Preferences{Backend: config.BackendMemory, Key: "k"} },
		},
		{
			name:    "bot without admin",
			mutate:  func(c *config.Config) { c.Bot.Token = "token" },
			wantErr: config.ErrMissingSetting,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == nil {
				rq.NoError(err)
				return
			}

			rq.ErrorIs(err, tc.wantErr)
		})
	}

	require.Error(t, func() error {
		cfg := valid()
		cfg.Refresh.Interval = -time.Second
		return cfg.Validate()
	}())
}
