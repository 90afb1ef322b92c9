package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"word-arithmetic/internal/config"
	"word-arithmetic/internal/embeddings"
	"word-arithmetic/internal/logger"
	"word-arithmetic/internal/resolver"
	"word-arithmetic/internal/store"
)

// Deps bundles the runtime dependencies shared by all handlers.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Store    store.Store
	Embedder embeddings.Embedder
	Resolver *resolver.Resolver
}

// Build loads env, config, the embedding snapshot, and the optional
// provider. A snapshot load failure is fatal: the service must not
// accept traffic without a loaded store.
func Build(ctx context.Context) (Deps, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	st, err := buildStore(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load embedding snapshot: %w", err)
	}
	log.Info("embedding snapshot loaded", "provider", cfg.SnapshotProvider, "words", st.Len())

	embedder := buildEmbedder(cfg, log)
	res := resolver.New(st, embedder, cfg.GenerationDelay, log)

	return Deps{
		Config:   cfg,
		Log:      log,
		Store:    st,
		Embedder: embedder,
		Resolver: res,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config, log *slog.Logger) (*store.Memory, error) {
	switch cfg.SnapshotProvider {
	case "file":
		return store.LoadFile(cfg.SnapshotPath, log)
	case "redis":
		return store.LoadRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.SnapshotKey, log)
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when SNAPSHOT_PROVIDER=postgres")
		}
		return store.LoadPostgres(ctx, cfg.DBURL, log)
	default:
		return nil, fmt.Errorf("invalid SNAPSHOT_PROVIDER: %s (valid options: file, redis, postgres)", cfg.SnapshotProvider)
	}
}

// buildEmbedder returns nil when no API key is configured; the service
// then runs in cache-only mode instead of refusing to start.
func buildEmbedder(cfg config.Config, log *slog.Logger) embeddings.Embedder {
	if cfg.OpenAIKey == "" {
		log.Warn("OPENAI_API_KEY not set; running in cache-only mode, new words cannot be embedded")
		return nil
	}
	embedder, err := embeddings.NewOpenAIEmbedder(cfg.OpenAIKey, openai.EmbeddingModel(cfg.EmbeddingModel))
	if err != nil {
		log.Warn("failed to initialize OpenAI embedder; running in cache-only mode", "err", err)
		return nil
	}
	log.Info("using OpenAI embedder", "model", cfg.EmbeddingModel)
	return embedder
}
