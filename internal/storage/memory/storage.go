package memory

import (
	"context"
	"sync"

	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	values map[string]string
	writes map[string]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", model.ErrKeyNotFound
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes[key]++
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// WriteCount returns how many times key has been set
func (s *Storage) WriteCount(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[key]
}
