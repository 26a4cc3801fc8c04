package identity

import "time"

// Group classifies an identifier in the population registry.
type Group string

const (
	// GroupNational is a national identity number. Only this group is
	// meaningful when matching people against case systems.
	GroupNational Group = "NATIONAL_ID"

	GroupOrganization Group = "ORGANIZATION"
	GroupInternal     Group = "INTERNAL"
)

// Identifier is one registry identifier for a person, current or historical.
type Identifier struct {
	Value      string
	Group      Group
	Historical bool
}

// Aliases is a person's national-id alias set, an immutable snapshot per
// resolution. It is re-fetched on every invocation; no cache is assumed
// correct across calls.
type Aliases struct {
	Current    string
	Historical []string
}

// All returns the current id followed by all historical ids.
func (a Aliases) All() []string {
	if a.Current == "" {
		return a.Historical
	}
	return append([]string{a.Current}, a.Historical...)
}

// RelationRole is the related person's role seen from the resolved person.
type RelationRole string

const (
	RoleChild  RelationRole = "CHILD"
	RoleParent RelationRole = "PARENT"
)

// Relation ties a related person to the resolved one.
type Relation struct {
	ID   string
	Role RelationRole
}

// Protection is an address-protection marking.
type Protection string

// ProtectionStrictlyConfidential forces all case work to the secure office.
const ProtectionStrictlyConfidential Protection = "STRICTLY_CONFIDENTIAL"

// MaritalStatus values as recorded by the registry.
const MaritalStatusMarried = "MARRIED"

// MaritalRecord is one marital-status entry. The effective date is preferred;
// registrations confirmed after the fact only carry a confirmation date.
type MaritalRecord struct {
	Status        string
	EffectiveDate *time.Time
	ConfirmedDate *time.Time
}

// Date returns the record's date, or nil when the registry recorded neither.
func (m MaritalRecord) Date() *time.Time {
	if m.EffectiveDate != nil {
		return m.EffectiveDate
	}
	return m.ConfirmedDate
}

// PersonRecord is the subset of registry person data this process reads.
type PersonRecord struct {
	DeathDate *time.Time
	Marital   []MaritalRecord
}
