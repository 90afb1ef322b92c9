package embeddings

import (
	"context"

	"github.com/stretchr/testify/mock"

	"word-arithmetic/internal/vector"
)

// MockEmbedder is a mock implementation of Embedder using testify/mock.
type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) Embed(ctx context.Context, word string) (vector.Vector, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vector.Vector), args.Error(1)
}
