package vector

import "math"

// Vector is a word embedding: an ordered sequence of float64 components.
type Vector []float64

// IsFinite reports whether every component is a finite number.
// A vector containing NaN or Inf must never be cached or returned.
func IsFinite(v Vector) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func Clone(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// CosineSimilarity computes the cosine of the angle between a and b,
// clamped to [-1, 1]. A zero-norm input yields 0 rather than an error,
// and a NaN outcome is coerced to 0. Callers must ensure the vectors
// have the same length.
func CosineSimilarity(a, b Vector) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) {
		return 0
	}
	return math.Max(-1, math.Min(1, sim))
}
