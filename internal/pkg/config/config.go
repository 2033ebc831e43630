package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the remote Circuna API the client talks to.
	APIBaseURL string `env:"CIRCUNA_API_URL, default=http://localhost:8000"`
	// Storage selects the slot backend: file or redis.
	Storage  string `env:"CIRCUNA_STORAGE, default=file"`
	DataDir  string `env:"CIRCUNA_DATA_DIR"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Port is used by the dev API stand-in only.
	Port string `env:"PORT, default=8000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	// URI left empty keeps the dev API on its in-memory repository.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=circuna"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return &cfg
}

// defaultDataDir is ~/.circuna, or ./.circuna when the home directory is
// unresolvable.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".circuna"
	}
	return filepath.Join(home, ".circuna")
}
