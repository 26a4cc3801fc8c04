package legacy

import (
	"context"
	"sync"
)

// MemoryClient implements Client in memory for tests and local wiring.
type MemoryClient struct {
	mu         sync.RWMutex
	benefits   map[string][]Record
	cases      map[string][]Record
	historical map[string][]Record
}

// NewMemoryClient creates an empty in-memory mainframe.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		benefits:   make(map[string][]Record),
		cases:      make(map[string][]Record),
		historical: make(map[string][]Record),
	}
}

// AddActiveBenefit registers a running benefit payment for id.
func (m *MemoryClient) AddActiveBenefit(id string, rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.benefits[id] = append(m.benefits[id], rec)
}

// AddCaseRecord registers a case row for id.
func (m *MemoryClient) AddCaseRecord(id string, rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cases[id] = append(m.cases[id], rec)
}

// AddHistoricalDecision registers a historical benefit decision for id.
func (m *MemoryClient) AddHistoricalDecision(id string, rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historical[id] = append(m.historical[id], rec)
}

// FindActiveBenefit implements Client.
func (m *MemoryClient) FindActiveBenefit(ctx context.Context, applicantIDs []string, childIDs []string) (SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.search(m.benefits, applicantIDs, childIDs), nil
}

// FindCaseRecords implements Client.
func (m *MemoryClient) FindCaseRecords(ctx context.Context, applicantIDs []string, childIDs []string) (SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.search(m.cases, applicantIDs, childIDs), nil
}

// FindHistoricalDecisions implements Client.
func (m *MemoryClient) FindHistoricalDecisions(ctx context.Context, ids []string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, id := range ids {
		out = append(out, m.historical[id]...)
	}
	return out, nil
}

func (m *MemoryClient) search(table map[string][]Record, applicantIDs, childIDs []string) SearchResult {
	var result SearchResult
	for _, id := range applicantIDs {
		result.Applicant = append(result.Applicant, table[id]...)
	}
	for _, id := range childIDs {
		result.Children = append(result.Children, table[id]...)
	}
	return result
}
