package office

import (
	"context"
	"fmt"
	"sync"

	"mottak/pkg/sentinel"
)

// MemoryClient implements Client in memory for tests and local wiring.
type MemoryClient struct {
	mu      sync.RWMutex
	offices map[string]Office
}

// NewMemoryClient creates an empty in-memory office register.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{offices: make(map[string]Office)}
}

// AddOffice stores an office row.
func (m *MemoryClient) AddOffice(o Office) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offices[o.Code] = o
}

// FetchOffice implements Client.
func (m *MemoryClient) FetchOffice(ctx context.Context, code string) (Office, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.offices[code]
	if !ok {
		return Office{}, fmt.Errorf("office %s: %w", code, sentinel.ErrNotFound)
	}
	return o, nil
}
