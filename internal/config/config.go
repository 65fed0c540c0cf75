package config

import (
	"os"
	"time"
)

// Storage media understood by the storage opener.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Config holds runtime settings for the imob CLI.
//
// Fields:
//   - Storage: medium kind (sqlite, postgres, redis, memory).
//   - DSN: SQLite file path or PostgreSQL connection string.
//   - RedisURL: redis:// URL used when Storage is redis.
//   - LogLevel: debug, info, warn or error.
//   - GenAIAPIKey / GenAIModel: Gemini credentials for description drafts;
//     an empty key disables generation (the fallback text is used).
//   - DescribeTimeout: upper bound for one generation call.
type Config struct {
	Storage         string
	DSN             string
	RedisURL        string
	LogLevel        string
	GenAIAPIKey     string
	GenAIModel      string
	DescribeTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = StorageSQLite
	c.DSN = "imob.db"
	c.RedisURL = "redis://localhost:6379/0"
	c.LogLevel = "info"
	c.GenAIModel = "gemini-2.5-flash"
	c.DescribeTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, lookupEnv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
