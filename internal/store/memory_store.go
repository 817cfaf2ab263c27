package store

import (
	"context"
	"sync"

	"timepick/internal/domain"
)

// MemoryStorage keeps items in memory for the lifetime of the process.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[domain.StorageKey]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[domain.StorageKey]string)}
}

// GetItem returns the value under key and whether it was present.
func (s *MemoryStorage) GetItem(_ context.Context, key domain.StorageKey) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (s *MemoryStorage) SetItem(_ context.Context, key domain.StorageKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// RemoveItem deletes key.
func (s *MemoryStorage) RemoveItem(_ context.Context, key domain.StorageKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Compile-time assertion that MemoryStorage implements domain.SessionStorage.
var _ domain.SessionStorage = (*MemoryStorage)(nil)
