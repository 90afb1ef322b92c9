package store

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"word-arithmetic/internal/vector"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"King", "king"},
		{"  woman \t", "woman"},
		{"MAN", "man"},
		{"don't", "don't"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMemoryGetNormalizes(t *testing.T) {
	m := NewMemory(map[string]vector.Vector{"King": {1, 2}})

	v, ok := m.Get(" KING ")
	if !ok {
		t.Fatal("expected hit for differently-cased word")
	}
	if !reflect.DeepEqual(v, vector.Vector{1, 2}) {
		t.Errorf("got vector %v", v)
	}
	if _, ok := m.Get("queen"); ok {
		t.Error("expected miss for unknown word")
	}
}

func TestMemorySetAllAndWords(t *testing.T) {
	m := NewMemory(map[string]vector.Vector{"king": {1}})
	m.SetAll(map[string]vector.Vector{
		"Woman": {2},
		"man":   {3},
	})

	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Len())
	}
	words := m.Words()
	sort.Strings(words)
	want := []string{"king", "man", "woman"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Words() = %v, want %v", words, want)
	}
}

func TestLoadFileMixedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	data := `{
		"king": [0.1, 0.2],
		"broken": "not a vector",
		"empty": []
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadFile(path, discardLogger())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 valid entry, got %d", m.Len())
	}
	if _, ok := m.Get("king"); !ok {
		t.Error("expected valid entry to survive")
	}
	if _, ok := m.Get("broken"); ok {
		t.Error("malformed entry should have been excluded")
	}
}

func TestLoadFileAllInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"a": "x", "b": []}`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, discardLogger())
	if !errors.Is(err, ErrNoValidEntries) {
		t.Errorf("expected ErrNoValidEntries, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"), discardLogger())
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`[1, 2, 3]`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, discardLogger())
	if !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}
}

func TestLoadFileEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadFile(path, discardLogger())
	if err != nil {
		t.Fatalf("empty snapshot should load: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", m.Len())
	}
}
