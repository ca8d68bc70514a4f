package storage

import (
	"context"
	"sync"
)

// MemoryStore is a process-local StateStore
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) GetState(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	return val, ok
}

func (m *MemoryStore) SetState(_ context.Context, key, val string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = val
	return nil
}

func (m *MemoryStore) DeleteState(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
