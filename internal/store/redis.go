package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoadRedis reads a snapshot from a Redis hash whose fields are words
// and whose values are JSON-encoded float arrays. The connection is
// only used for the one-time load; nothing is written back.
func LoadRedis(ctx context.Context, addr, password, key string, log *slog.Logger) (*Memory, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	defer client.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	fields, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: reading hash %q: %v", ErrMalformedSnapshot, key, err)
	}
	if len(fields) == 0 {
		// HGetAll returns an empty map for a missing key.
		return nil, fmt.Errorf("%w: hash %q", ErrSnapshotNotFound, key)
	}

	raw := make(map[string][]float64, len(fields))
	for word, payload := range fields {
		var values []float64
		if err := json.Unmarshal([]byte(payload), &values); err != nil {
			log.Warn("snapshot entry is not a numeric vector", "word", word, "err", err)
			raw[word] = nil
			continue
		}
		raw[word] = values
	}
	return fromRaw(raw, log)
}
