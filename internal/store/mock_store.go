package store

import (
	"github.com/stretchr/testify/mock"

	"word-arithmetic/internal/vector"
)

// MockStore is a mock implementation of Store using testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(word string) (vector.Vector, bool) {
	args := m.Called(word)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(vector.Vector), args.Bool(1)
}

func (m *MockStore) SetAll(entries map[string]vector.Vector) {
	m.Called(entries)
}

func (m *MockStore) Words() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockStore) Len() int {
	args := m.Called()
	return args.Int(0)
}
