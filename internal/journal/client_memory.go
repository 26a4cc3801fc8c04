package journal

import (
	"context"
	"fmt"
	"sync"

	"mottak/pkg/sentinel"
)

// MemoryClient implements Client in memory for tests and local wiring.
type MemoryClient struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryClient creates an empty in-memory archive.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{entries: make(map[string]Entry)}
}

// AddEntry stores a journal entry.
func (m *MemoryClient) AddEntry(e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
}

// FetchEntry implements Client.
func (m *MemoryClient) FetchEntry(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("journal entry %s: %w", id, sentinel.ErrNotFound)
	}
	return &e, nil
}
