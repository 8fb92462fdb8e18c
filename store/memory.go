package store

import (
	"context"
	"sync"

	"github.com/dacite/dacite/hash"
)

// Memory is an in-process Blob backed by a map, guarded by a mutex. It is
// the default store: good for the CLI and for tests, gone when the
// process exits.
type Memory struct {
	mu   sync.RWMutex
	data map[hash.H][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[hash.H][]byte)}
}

func (m *Memory) Put(ctx context.Context, h hash.H, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[h] = cp
	return nil
}

func (m *Memory) Get(ctx context.Context, h hash.H) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[h]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

var _ Blob = (*Memory)(nil)
