// ABOUTME: In-memory Blob implementation.
// ABOUTME: Used by tests and as a fallback when no durable backend is wanted.
package storage

import "sync"

// Memory is a Blob held entirely in process memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// Compile-time check that Memory implements Blob.
var _ Blob = (*Memory)(nil)

// NewMemory creates an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *Memory) Close() error {
	return nil
}
