package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory menyimpan dokumen di map per path. Dipakai untuk tes dan mode dev
// (STORE_DRIVER=memory); semantiknya sama dengan driver remote.
type Memory struct {
	mu    sync.RWMutex
	paths map[string]map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{paths: make(map[string]map[string]json.RawMessage)}
}

var _ Store = (*Memory)(nil)

func (m *Memory) ReadAll(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]json.RawMessage, len(m.paths[path]))
	for k, v := range m.paths[path] {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) Append(ctx context.Context, path string, doc json.RawMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.paths[path] == nil {
		m.paths[path] = make(map[string]json.RawMessage)
	}
	key := NewPushKey()
	cp := make(json.RawMessage, len(doc))
	copy(cp, doc)
	m.paths[path][key] = cp
	return key, nil
}

func (m *Memory) Delete(ctx context.Context, path, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.paths[path][key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.paths[path], key)
	return nil
}
