// Package resolver turns a set of words into their embedding vectors,
// generating and caching any that the store does not already hold.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"word-arithmetic/internal/embeddings"
	"word-arithmetic/internal/store"
	"word-arithmetic/internal/vector"
)

// ErrNoProvider means missing words cannot be generated because the
// service is running in cache-only mode.
var ErrNoProvider = errors.New("no embedding provider configured")

// Failure records one word that could not be generated.
type Failure struct {
	Word string
	Err  error
}

// GenerationError reports every word of a batch that failed. A batch
// with any failure is discarded as a whole; no vectors from it are
// cached.
type GenerationError struct {
	Failures []Failure
}

func (e *GenerationError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s (%v)", f.Word, f.Err)
	}
	return "failed to generate embeddings for: " + strings.Join(parts, ", ")
}

// Resolver resolves words against a shared store and an optional
// embedding provider.
type Resolver struct {
	store    store.Store
	embedder embeddings.Embedder // nil in cache-only mode
	delay    time.Duration
	log      *slog.Logger
	inflight singleflight.Group
}

// New creates a Resolver. delay paces consecutive provider calls within
// one batch; embedder may be nil, which disables generation.
func New(st store.Store, emb embeddings.Embedder, delay time.Duration, log *slog.Logger) *Resolver {
	return &Resolver{store: st, embedder: emb, delay: delay, log: log}
}

// Resolve returns the embedding for every requested word. Words are
// normalized and deduplicated; cached words are served from the store
// and the rest are generated sequentially. Generation keeps going past
// per-word failures so the error can name every word that failed, but a
// batch with any failure mutates nothing: the store is updated in a
// single merge only when the whole batch succeeded.
func (r *Resolver) Resolve(ctx context.Context, words []string) (map[string]vector.Vector, error) {
	resolved := make(map[string]vector.Vector, len(words))
	var missing []string
	for _, w := range words {
		word := store.Normalize(w)
		if word == "" {
			continue
		}
		if _, ok := resolved[word]; ok {
			continue
		}
		if v, ok := r.store.Get(word); ok {
			resolved[word] = v
			continue
		}
		missing = append(missing, word)
	}
	if len(missing) == 0 {
		return resolved, nil
	}
	if r.embedder == nil {
		return nil, fmt.Errorf("%w: %s not cached", ErrNoProvider, strings.Join(missing, ", "))
	}

	sort.Strings(missing)
	r.log.Info("generating embeddings", "words", missing)

	generated := make(map[string]vector.Vector, len(missing))
	var failures []Failure
	for i, word := range missing {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.delay):
			}
		}
		v, err := r.generate(ctx, word)
		if err != nil {
			r.log.Warn("embedding generation failed", "word", word, "err", err)
			failures = append(failures, Failure{Word: word, Err: err})
			continue
		}
		generated[word] = v
	}
	if len(failures) > 0 {
		return nil, &GenerationError{Failures: failures}
	}

	r.store.SetAll(generated)
	for word, v := range generated {
		resolved[word] = v
	}
	return resolved, nil
}

// generate funnels the provider call through singleflight keyed by the
// normalized word, so concurrent resolutions of the same word share one
// in-flight request instead of each hitting the provider.
func (r *Resolver) generate(ctx context.Context, word string) (vector.Vector, error) {
	v, err, _ := r.inflight.Do(word, func() (any, error) {
		// A concurrent batch may have merged this word while we waited.
		if cached, ok := r.store.Get(word); ok {
			return cached, nil
		}
		vec, err := r.embedder.Embed(ctx, word)
		if err != nil {
			return nil, err
		}
		if !vector.IsFinite(vec) {
			return nil, fmt.Errorf("generated embedding for %q contains NaN or Inf", word)
		}
		return vec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(vector.Vector), nil
}
