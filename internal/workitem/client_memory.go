package workitem

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"mottak/pkg/sentinel"
)

// MemoryClient implements Client in memory for tests and local wiring.
type MemoryClient struct {
	mu    sync.RWMutex
	items map[string]WorkItem
	order []string
}

// NewMemoryClient creates an empty in-memory tracker.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{items: make(map[string]WorkItem)}
}

// FindOpenByJournal implements Client.
func (m *MemoryClient) FindOpenByJournal(ctx context.Context, journalID string, types ...Type) ([]WorkItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []WorkItem
	for _, id := range m.order {
		it := m.items[id]
		if it.JournalID == journalID && it.Status.Open() && matchesType(it.Type, types) {
			out = append(out, it)
		}
	}
	return out, nil
}

// FindOpenByPerson implements Client.
func (m *MemoryClient) FindOpenByPerson(ctx context.Context, subjectID string, itemType Type) ([]WorkItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []WorkItem
	for _, id := range m.order {
		it := m.items[id]
		if it.SubjectID == subjectID && it.Type == itemType && it.Status.Open() {
			out = append(out, it)
		}
	}
	return out, nil
}

// Create implements Client.
func (m *MemoryClient) Create(ctx context.Context, req CreateRequest) (WorkItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it := WorkItem{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Status:      StatusOpen,
		Description: req.Description,
		SubjectID:   req.SubjectID,
		CaseID:      req.CaseID,
		Office:      req.Office,
		Tag:         req.Tag,
		JournalID:   req.JournalID,
		DueDate:     req.DueDate,
	}
	m.items[it.ID] = it
	m.order = append(m.order, it.ID)
	return it, nil
}

// UpdateDescription implements Client.
func (m *MemoryClient) UpdateDescription(ctx context.Context, id, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[id]
	if !ok {
		return fmt.Errorf("work item %s: %w", id, sentinel.ErrNotFound)
	}
	it.Description = description
	m.items[id] = it
	return nil
}

// SetStatus transitions an item, for test setup.
func (m *MemoryClient) SetStatus(id string, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if it, ok := m.items[id]; ok {
		it.Status = status
		m.items[id] = it
	}
}

// Item returns a snapshot of one item, for assertions.
func (m *MemoryClient) Item(id string) (WorkItem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, ok := m.items[id]
	return it, ok
}

func matchesType(t Type, types []Type) bool {
	if len(types) == 0 {
		return true
	}
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}
