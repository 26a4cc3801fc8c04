package casesystem

import (
	"context"
	"fmt"
	"sync"

	"mottak/pkg/sentinel"
)

// MemoryClient implements Client in memory for tests and local wiring.
type MemoryClient struct {
	mu      sync.RWMutex
	records map[int64]*memoryCase
}

type memoryCase struct {
	c             Case
	applicantID   string
	childIDs      []string
	activeBenefit bool
}

// NewMemoryClient creates an empty in-memory case system.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{records: make(map[int64]*memoryCase)}
}

// AddCase stores a case together with its applicant and the children tied to
// it.
func (m *MemoryClient) AddCase(c Case, applicantID string, childIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[c.ID] = &memoryCase{c: c, applicantID: applicantID, childIDs: childIDs}
}

// SetActiveBenefit marks a case as currently paying the extended or ordinary
// benefit, making it visible to FindCasesForActiveBenefit.
func (m *MemoryClient) SetActiveBenefit(caseID int64, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[caseID]; ok {
		rec.activeBenefit = active
	}
}

// FindCasesForApplicantOrRecipient implements Client.
func (m *MemoryClient) FindCasesForApplicantOrRecipient(ctx context.Context, applicantIDs []string, childIDs []string) ([]CaseParty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []CaseParty
	for _, rec := range m.records {
		if row, ok := rec.match(applicantIDs, childIDs); ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// FindCasesForActiveBenefit implements Client.
func (m *MemoryClient) FindCasesForActiveBenefit(ctx context.Context, ids []string) ([]CaseParty, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []CaseParty
	for _, rec := range m.records {
		if !rec.activeBenefit {
			continue
		}
		if row, ok := rec.match(ids, ids); ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// FetchCase implements Client.
func (m *MemoryClient) FetchCase(ctx context.Context, caseID int64) (*Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[caseID]
	if !ok {
		return nil, fmt.Errorf("case %d: %w", caseID, sentinel.ErrNotFound)
	}
	copied := rec.c
	return &copied, nil
}

func (rec *memoryCase) match(applicantIDs, childIDs []string) (CaseParty, bool) {
	row := CaseParty{PersonID: rec.applicantID, CaseID: rec.c.ID, Status: rec.c.Status}
	if contains(applicantIDs, rec.applicantID) {
		row.Role = RoleApplicant
		return row, true
	}
	for _, child := range rec.childIDs {
		if contains(childIDs, child) {
			row.Role = RoleChild
			return row, true
		}
	}
	return CaseParty{}, false
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
