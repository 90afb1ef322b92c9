package store

import (
	"sync"

	"word-arithmetic/internal/vector"
)

// Memory is the in-process embedding store. All request handlers share
// one instance, so reads and the batch merge are guarded by a RWMutex.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]vector.Vector
}

// NewMemory builds a store from pre-validated entries. Keys are
// normalized on the way in.
func NewMemory(entries map[string]vector.Vector) *Memory {
	m := &Memory{entries: make(map[string]vector.Vector, len(entries))}
	for word, v := range entries {
		m.entries[Normalize(word)] = v
	}
	return m
}

func (m *Memory) Get(word string) (vector.Vector, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[Normalize(word)]
	return v, ok
}

func (m *Memory) SetAll(entries map[string]vector.Vector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for word, v := range entries {
		m.entries[Normalize(word)] = v
	}
}

func (m *Memory) Words() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	words := make([]string, 0, len(m.entries))
	for word := range m.entries {
		words = append(words, word)
	}
	return words
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
