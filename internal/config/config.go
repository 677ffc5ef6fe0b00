package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var (
	ErrUnknownBackend = errors.New("unknown preferences backend")
	ErrMissingSetting = errors.New("missing setting")
)

type Config struct {
	App         App
	HTTP        HTTP
	Catalog     Catalog
	Bazaar      Bazaar
	Preferences Preferences
	Redis       Redis
	Postgres    Postgres
	Bot         Bot
	Refresh     Refresh
}

type App struct {
	Name      string `env:"APP_NAME" envDefault:"sbshards"`
	Version   string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Catalog struct {
	// Source is a file path or an http(s) URL.
	Source   string        `env:"CATALOG_SOURCE" envDefault:"shards.json"`
	Timeout  time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
	RetryMax int           `env:"CATALOG_RETRY_MAX" envDefault:"2"`
}

type Bazaar struct {
	URL            string        `env:"BAZAAR_URL" envDefault:"https://api.hypixel.net/v2/skyblock/bazaar"`
	Timeout        time.Duration `env:"BAZAAR_TIMEOUT" envDefault:"15s"`
	RetryMax       int           `env:"BAZAAR_RETRY_MAX" envDefault:"2"`
	RetryWaitMin   time.Duration `env:"BAZAAR_RETRY_WAIT_MIN" envDefault:"1s"`
	RetryWaitMax   time.Duration `env:"BAZAAR_RETRY_WAIT_MAX" envDefault:"5s"`
	LogFieldMaxLen int           `env:"BAZAAR_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Preferences struct {
	Backend string `env:"PREFERENCES_BACKEND" envDefault:"file"`
	Key     string `env:"PREFERENCES_KEY" envDefault:"ignoredShards"`
	Dir     string `env:"PREFERENCES_DIR" envDefault:".sbshards"`
}

type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix          string `env:"REDIS_KEY_PREFIX" envDefault:"sbshards:"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

type Bot struct {
	// Token empty disables the bot.
	Token   string `env:"BOT_TOKEN" json:"-"`
	AdminID int64  `env:"BOT_ADMIN_ID"`
}

type Refresh struct {
	// Interval zero disables the periodic refresher.
	Interval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	switch c.Preferences.Backend {
	case BackendFile:
		if c.Preferences.Dir == "" {
			return fmt.Errorf("PREFERENCES_DIR: %w", ErrMissingSetting)
		}
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("REDIS_ADDRESS: %w", ErrMissingSetting)
		}
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PG_DSN: %w", ErrMissingSetting)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Preferences.Backend)
	}

	if c.Preferences.Key == "" {
		return fmt.Errorf("PREFERENCES_KEY: %w", ErrMissingSetting)
	}

	if c.Catalog.Source == "" {
		return fmt.Errorf("CATALOG_SOURCE: %w", ErrMissingSetting)
	}

	if c.Bot.Token != "" && c.Bot.AdminID == 0 {
		return fmt.Errorf("BOT_ADMIN_ID: %w", ErrMissingSetting)
	}

	if c.Refresh.Interval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative, got %s", c.Refresh.Interval)
	}

	return nil
}

// BotEnabled reports whether a Telegram token is configured.
func (c Config) BotEnabled() bool {
	return c.Bot.Token != ""
}
