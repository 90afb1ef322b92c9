package expr

import (
	"errors"
	"fmt"

	"word-arithmetic/internal/vector"
)

var (
	ErrInvalidExpression = errors.New("expression must start with an add term")
	ErrUnknownOperator   = errors.New("unknown operator")
	ErrMissingWord       = errors.New("word missing from resolved embeddings")
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
	ErrNonFiniteResult   = errors.New("calculation resulted in a non-finite vector")
)

// Evaluate folds e left to right over the resolved embeddings and
// returns the result vector. It never mutates resolved; the accumulator
// starts as a copy of the first word's vector. Repeated addition of
// extreme embeddings can overflow, so the result is checked for
// finiteness before being returned.
func Evaluate(e Expression, resolved map[string]vector.Vector) (vector.Vector, error) {
	if len(e) == 0 || e[0].Op != OpAdd {
		return nil, ErrInvalidExpression
	}

	first, ok := resolved[e[0].Word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingWord, e[0].Word)
	}
	acc := vector.Clone(first)

	for _, term := range e[1:] {
		v, ok := resolved[term.Word]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingWord, term.Word)
		}
		if len(v) != len(acc) {
			return nil, fmt.Errorf("%w: %q has %d dimensions, want %d", ErrDimensionMismatch, term.Word, len(v), len(acc))
		}
		switch term.Op {
		case OpAdd:
			for i := range acc {
				acc[i] += v[i]
			}
		case OpSubtract:
			for i := range acc {
				acc[i] -= v[i]
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, term.Op)
		}
	}

	if !vector.IsFinite(acc) {
		return nil, ErrNonFiniteResult
	}
	return acc, nil
}
