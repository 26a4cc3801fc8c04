package identity

import (
	"context"
	"fmt"
	"sync"

	"mottak/pkg/sentinel"
)

// MemoryRegistry implements Registry in memory. It backs tests and local runs;
// production wiring swaps in the HTTP registry client.
type MemoryRegistry struct {
	mu      sync.RWMutex
	persons map[string]*memoryPerson
}

type memoryPerson struct {
	identifiers []Identifier
	relations   []Relation
	record      PersonRecord
	protection  Protection
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{persons: make(map[string]*memoryPerson)}
}

// AddPerson registers a person with a current national id and optional
// historical aliases. Any alias can be used for lookup afterwards.
func (m *MemoryRegistry) AddPerson(currentID string, historical ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := &memoryPerson{
		identifiers: []Identifier{{Value: currentID, Group: GroupNational}},
	}
	for _, h := range historical {
		p.identifiers = append(p.identifiers, Identifier{Value: h, Group: GroupNational, Historical: true})
	}
	m.persons[currentID] = p
	for _, h := range historical {
		m.persons[h] = p
	}
}

// AddIdentifier appends a raw identifier (any group) to an existing person.
func (m *MemoryRegistry) AddIdentifier(personID string, ident Identifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.persons[personID]; ok {
		p.identifiers = append(p.identifiers, ident)
	}
}

// SetRelations replaces the person's family relations.
func (m *MemoryRegistry) SetRelations(personID string, relations ...Relation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.persons[personID]; ok {
		p.relations = relations
	}
}

// SetRecord replaces the person's registry record.
func (m *MemoryRegistry) SetRecord(personID string, record PersonRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.persons[personID]; ok {
		p.record = record
	}
}

// SetProtection sets the person's address-protection marking.
func (m *MemoryRegistry) SetProtection(personID string, marking Protection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.persons[personID]; ok {
		p.protection = marking
	}
}

func (m *MemoryRegistry) lookup(id string) (*memoryPerson, error) {
	p, ok := m.persons[id]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", id, sentinel.ErrNotFound)
	}
	return p, nil
}

// LookupIdentifiers implements Registry.
func (m *MemoryRegistry) LookupIdentifiers(ctx context.Context, id string) ([]Identifier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]Identifier, len(p.identifiers))
	copy(out, p.identifiers)
	return out, nil
}

// LookupRelations implements Registry.
func (m *MemoryRegistry) LookupRelations(ctx context.Context, id string) ([]Relation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]Relation, len(p.relations))
	copy(out, p.relations)
	return out, nil
}

// FetchPerson implements Registry.
func (m *MemoryRegistry) FetchPerson(ctx context.Context, id string) (PersonRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, err := m.lookup(id)
	if err != nil {
		return PersonRecord{}, err
	}
	return p.record, nil
}

// ProtectionMarking implements Registry.
func (m *MemoryRegistry) ProtectionMarking(ctx context.Context, id string) (Protection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return p.protection, nil
}
