// Package memory provides a map-backed KVStore. It stands in for the
// on-device store in tests and backs the dev API when no database is
// configured.
package memory

import (
	"context"
	"sync"

	"github.com/circuna/circuna/internal/core/domain"
)

type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[key] = stored
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
