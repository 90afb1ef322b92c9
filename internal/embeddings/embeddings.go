package embeddings

import (
	"context"

	"word-arithmetic/internal/vector"
)

// Embedder generates the embedding vector for a single word.
type Embedder interface {
	Embed(ctx context.Context, word string) (vector.Vector, error)
}
