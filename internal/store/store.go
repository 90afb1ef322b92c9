package store

import (
	"errors"
	"log/slog"
	"strings"

	"word-arithmetic/internal/vector"
)

var (
	ErrSnapshotNotFound  = errors.New("embedding snapshot not found")
	ErrMalformedSnapshot = errors.New("embedding snapshot is malformed")
	ErrNoValidEntries    = errors.New("embedding snapshot contains no valid entries")
)

// Normalize maps a word to its canonical form. Store keys, parsed
// expression words, and request words all go through this before any
// lookup or comparison.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Store holds the word → embedding mapping for the lifetime of the
// process. Entries are added as new words are resolved; they are never
// removed and never written back to the snapshot.
type Store interface {
	// Get returns the embedding for a normalized word.
	Get(word string) (vector.Vector, bool)

	// SetAll merges a batch of entries in one step. Resolvers rely on
	// this for all-or-nothing cache writes.
	SetAll(entries map[string]vector.Vector)

	// Words lists every cached word.
	Words() []string

	// Len reports the number of cached words.
	Len() int
}

// fromRaw validates raw snapshot entries and builds a Memory store from
// the survivors. Entries that are empty or non-finite are logged and
// skipped; if the snapshot had entries and none survive, the load fails.
func fromRaw(raw map[string][]float64, log *slog.Logger) (*Memory, error) {
	entries := make(map[string]vector.Vector, len(raw))
	for word, values := range raw {
		v := vector.Vector(values)
		if len(v) == 0 || !vector.IsFinite(v) {
			log.Warn("skipping invalid snapshot entry", "word", word, "dimensions", len(v))
			continue
		}
		entries[Normalize(word)] = v
	}
	if len(raw) > 0 && len(entries) == 0 {
		return nil, ErrNoValidEntries
	}
	return NewMemory(entries), nil
}
