package tokenstore

import (
	"context"
	"sync"
	"time"
)

type Memory struct {
	mu       sync.RWMutex
	token    string
	present  bool
	storedAt time.Time
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.present
}

func (m *Memory) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.present, m.storedAt = token, true, now()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.present, m.storedAt = "", false, time.Time{}
	return nil
}

func (m *Memory) IsPresent(ctx context.Context) bool {
	_, ok := m.Get(ctx)
	return ok
}

func (m *Memory) StoredAt(context.Context) (time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storedAt, m.present
}
