// Package expr parses and evaluates word arithmetic expressions such as
// "king + woman - man".
package expr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Op is an arithmetic operation applied to a word's embedding.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
)

// Term pairs a normalized word with the operation that combines it
// into the running result.
type Term struct {
	Word string
	Op   Op
}

// Expression is an ordered, non-empty list of terms. The first term's
// operation is always OpAdd: it establishes the base vector.
type Expression []Term

var (
	ErrEmptyExpression     = errors.New("expression is empty")
	ErrMalformedExpression = errors.New("malformed expression")
)

// A token is an optional sign followed by a word. Hyphens and
// apostrophes are allowed inside words ("mother-in-law", "don't").
var tokenPattern = regexp.MustCompile(`([+-]?)\s*\b([a-zA-Z][a-zA-Z'-]*)\b`)

// Parse converts an input string into an Expression.
//
// The input must consist entirely of sign+word tokens: the matched
// tokens are reconstructed with single spaces and compared against the
// whitespace-normalized input, so stray punctuation, digits, or doubled
// operators fail the parse rather than being silently skipped. A sign on
// the first token is tolerated but carries no meaning; the first term is
// always OpAdd. Words come out lowercased.
func Parse(input string) (Expression, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyExpression
	}

	matches := tokenPattern.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedExpression, input)
	}

	parts := make([]string, 0, 2*len(matches))
	for _, m := range matches {
		if m[1] != "" {
			parts = append(parts, m[1])
		}
		parts = append(parts, m[2])
	}
	if normalizeSpace(trimmed) != strings.Join(parts, " ") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedExpression, input)
	}

	e := make(Expression, 0, len(matches))
	e = append(e, Term{Word: strings.ToLower(matches[0][2]), Op: OpAdd})
	for _, m := range matches[1:] {
		var op Op
		switch m[1] {
		case "+":
			op = OpAdd
		case "-":
			op = OpSubtract
		default:
			// Two adjacent words with no sign between them.
			return nil, fmt.Errorf("%w: missing operator before %q", ErrMalformedExpression, m[2])
		}
		e = append(e, Term{Word: strings.ToLower(m[2]), Op: op})
	}
	return e, nil
}

// Words returns the unique words of e in first-appearance order.
func Words(e Expression) []string {
	seen := make(map[string]struct{}, len(e))
	words := make([]string, 0, len(e))
	for _, t := range e {
		if _, ok := seen[t.Word]; ok {
			continue
		}
		seen[t.Word] = struct{}{}
		words = append(words, t.Word)
	}
	return words
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
