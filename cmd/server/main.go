package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"

	"word-arithmetic/internal/app"
	"word-arithmetic/internal/expr"
	"word-arithmetic/internal/httputil"
	"word-arithmetic/internal/resolver"
	"word-arithmetic/internal/store"
	"word-arithmetic/internal/vector"
)

type calculateRequest struct {
	Expression string `json:"expression" validate:"required"`
}

type embeddingRequest struct {
	Word string `json:"word" validate:"required"`
}

type compareRequest struct {
	TargetWord       string    `json:"target_word" validate:"required"`
	CalculatedVector []float64 `json:"calculated_vector" validate:"required,min=1"`
}

func main() {
	deps, err := app.Build(context.Background())
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log, deps.Config.CORSOrigins)

	r.Post("/calculate-vector", calculateVectorHandler(deps))
	r.Post("/get-embedding", getEmbeddingHandler(deps))
	r.Post("/compare-to-target", compareToTargetHandler(deps))
	r.Get("/get-words", getWordsHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("word arithmetic service listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

// calculateVectorHandler parses an arithmetic expression, resolves its
// words (generating missing ones when a provider is configured), and
// returns the folded result vector.
func calculateVectorHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		e, err := expr.Parse(req.Expression)
		if err != nil {
			httputil.Fail(deps.Log, w, fmt.Sprintf("invalid expression format: %q", req.Expression), err, http.StatusBadRequest)
			return
		}

		resolved, err := deps.Resolver.Resolve(r.Context(), expr.Words(e))
		if err != nil {
			httputil.Fail(deps.Log, w, err.Error(), err, http.StatusInternalServerError)
			return
		}

		result, err := expr.Evaluate(e, resolved)
		if err != nil {
			httputil.Fail(deps.Log, w, err.Error(), err, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Calculation successful",
			"vector":  result,
		})
	}
}

// getEmbeddingHandler returns a single word's embedding, generating and
// caching it on a miss when a provider is available.
func getEmbeddingHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req embeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		word := store.Normalize(req.Word)
		if word == "" {
			httputil.Fail(deps.Log, w, "word cannot be empty", nil, http.StatusBadRequest)
			return
		}

		resolved, err := deps.Resolver.Resolve(r.Context(), []string{word})
		if errors.Is(err, resolver.ErrNoProvider) {
			httputil.Fail(deps.Log, w, fmt.Sprintf("word %q not found in cache, cannot generate", word), err, http.StatusNotFound)
			return
		}
		if err != nil {
			httputil.Fail(deps.Log, w, fmt.Sprintf("failed to generate embedding for %q", word), err, http.StatusInternalServerError)
			return
		}

		v := resolved[word]
		if len(v) == 0 || !vector.IsFinite(v) {
			httputil.Fail(deps.Log, w, fmt.Sprintf("stored or generated embedding for %q is invalid", word), nil, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"word":   word,
			"vector": v,
		})
	}
}

// compareToTargetHandler computes cosine similarity between a
// caller-supplied vector and a cached target word's embedding.
func compareToTargetHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		calculated := vector.Vector(req.CalculatedVector)
		if !vector.IsFinite(calculated) {
			httputil.Fail(deps.Log, w, "invalid format for 'calculated_vector': contains NaN or Inf", nil, http.StatusBadRequest)
			return
		}

		target := store.Normalize(req.TargetWord)
		targetVec, ok := deps.Store.Get(target)
		if !ok {
			httputil.Fail(deps.Log, w, fmt.Sprintf("target word %q not found in cache", target), nil, http.StatusNotFound)
			return
		}
		if len(targetVec) == 0 || !vector.IsFinite(targetVec) {
			httputil.Fail(deps.Log, w, fmt.Sprintf("cached embedding for target word %q is invalid", target), nil, http.StatusInternalServerError)
			return
		}
		if len(calculated) != len(targetVec) {
			httputil.Fail(deps.Log, w, fmt.Sprintf("'calculated_vector' has %d dimensions, target has %d", len(calculated), len(targetVec)), nil, http.StatusBadRequest)
			return
		}

		similarity := vector.CosineSimilarity(calculated, targetVec)
		deps.Log.Info("comparison", "target_word", target, "similarity", similarity)

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"target_word": target,
			"similarity":  similarity,
		})
	}
}

// getWordsHandler lists every word currently cached.
func getWordsHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words := deps.Store.Words()
		sort.Strings(words)
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"words": words,
		})
	}
}
