package vector

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
	}{
		{
			name:     "identical vectors",
			a:        Vector{1, 0},
			b:        Vector{1, 0},
			expected: 1.0,
		},
		{
			name:     "orthogonal vectors",
			a:        Vector{1, 0},
			b:        Vector{0, 1},
			expected: 0.0,
		},
		{
			name:     "opposite vectors",
			a:        Vector{1, 0},
			b:        Vector{-1, 0},
			expected: -1.0,
		},
		{
			name:     "zero vector",
			a:        Vector{0, 0},
			b:        Vector{1, 1},
			expected: 0.0,
		},
		{
			name:     "empty vectors",
			a:        Vector{},
			b:        Vector{},
			expected: 0.0,
		},
		{
			name:     "45 degrees",
			a:        Vector{1, 0},
			b:        Vector{0.707, 0.707},
			expected: 0.707,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CosineSimilarity(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("got %f, want %f", result, tt.expected)
			}
		})
	}
}

func TestCosineSimilarityClamped(t *testing.T) {
	// Parallel vectors with large components can overshoot 1.0 in
	// floating point; the result must stay inside [-1, 1].
	a := Vector{1e8, 1e8, 1e8}
	sim := CosineSimilarity(a, a)
	if sim > 1.0 || sim < -1.0 {
		t.Fatalf("similarity %v outside [-1, 1]", sim)
	}
	if sim != 1.0 {
		t.Errorf("expected 1.0 for parallel vectors, got %v", sim)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want bool
	}{
		{"finite", Vector{1, -2.5, 0}, true},
		{"empty", Vector{}, true},
		{"nan", Vector{1, math.NaN()}, false},
		{"positive inf", Vector{math.Inf(1)}, false},
		{"negative inf", Vector{0, math.Inf(-1), 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.v); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	orig := Vector{1, 2, 3}
	c := Clone(orig)
	c[0] = 99
	if orig[0] != 1 {
		t.Fatal("Clone shares backing array with original")
	}
}
