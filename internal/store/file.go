package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// LoadFile reads a JSON snapshot of the form {"word": [floats...]} and
// returns a Memory store holding the valid entries.
func LoadFile(path string, log *slog.Logger) (*Memory, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	// Decode entries individually so one malformed value is skipped
	// instead of poisoning the whole snapshot. Undecodable entries stay
	// in the raw map as nil so fromRaw still counts them.
	raw := make(map[string][]float64, len(top))
	for word, payload := range top {
		var values []float64
		if err := json.Unmarshal(payload, &values); err != nil {
			log.Warn("snapshot entry is not a numeric vector", "word", word, "err", err)
			raw[word] = nil
			continue
		}
		raw[word] = values
	}
	return fromRaw(raw, log)
}
