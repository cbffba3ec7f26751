package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Token store kinds accepted in Config.TokenStore.
const (
	TokenStoreMemory = "memory"
	TokenStoreSQLite = "sqlite"
	TokenStoreRedis  = "redis"
)

// Config holds runtime settings for the agroassist CLI.
//
// Fields:
//   - APIBaseURL: base URL every service path is appended to.
//   - TokenStore: where the bearer token lives (memory, sqlite or redis).
//   - TokenDB: SQLite file used when TokenStore is sqlite.
//   - TokenPassphrase: when set, the SQLite token is sealed with a key
//     derived from it. Read from the environment only.
//   - RedisAddr: host:port used when TokenStore is redis.
//   - LogLevel: debug, info, warn or error.
//   - RequestTimeout: per-request HTTP timeout; zero means none.
type Config struct {
	APIBaseURL      string
	TokenStore      string
	TokenDB         string
	TokenPassphrase string
	RedisAddr       string
	LogLevel        string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.TokenStore = TokenStoreSQLite
	c.TokenDB = "agroassist.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.LogLevel = "info"
	c.RequestTimeout = 0
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", c.APIBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base url %q: missing scheme or host", c.APIBaseURL)
	}

	switch c.TokenStore {
	case TokenStoreMemory, TokenStoreSQLite, TokenStoreRedis:
	default:
		return fmt.Errorf("unknown token store %q", c.TokenStore)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("negative request timeout %s", c.RequestTimeout)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and .env), a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
