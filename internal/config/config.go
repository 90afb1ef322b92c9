package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// Server
	Port        int      `env:"PORT" envDefault:"5001"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string   `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Snapshot
	SnapshotProvider string `env:"SNAPSHOT_PROVIDER" envDefault:"file"` // "file", "redis" or "postgres"
	SnapshotPath     string `env:"SNAPSHOT_PATH" envDefault:"word_embeddings.json"`
	RedisAddr        string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	SnapshotKey      string `env:"SNAPSHOT_KEY" envDefault:"word_embeddings"`
	DBURL            string `env:"DB_URL"`

	// Embedding provider. An empty key degrades the service to
	// cache-only mode: no new words can be generated.
	OpenAIKey      string `env:"OPENAI_API_KEY"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`

	// Pause between consecutive generation calls within one batch.
	GenerationDelay time.Duration `env:"GENERATION_DELAY" envDefault:"100ms"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
