package nameindex

import (
	"context"
	"sync"
)

// Memory is an in-process Index backed by a map. It is the default store for
// single-instance deployments and tests.
type Memory struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

// NewMemory creates an empty in-memory index, optionally pre-seeded.
func NewMemory(seed ...string) *Memory {
	m := &Memory{names: make(map[string]struct{}, len(seed))}
	for _, name := range seed {
		m.names[normalize(name)] = struct{}{}
	}
	return m
}

func (m *Memory) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.names[normalize(name)]
	return ok, nil
}

func (m *Memory) Add(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := normalize(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.names[key]; ok {
		return ErrNameTaken
	}
	m.names[key] = struct{}{}
	return nil
}

func (m *Memory) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.names, normalize(name))
	return nil
}
