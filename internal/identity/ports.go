package identity

import "context"

// Registry is the population-registry client. Implementations wrap the
// registry's HTTP API; lookups return sentinel.ErrNotFound (wrapped) when the
// identifier is unknown to the registry.
type Registry interface {
	// LookupIdentifiers returns every identifier registered for id, across
	// all identity groups, current and historical.
	LookupIdentifiers(ctx context.Context, id string) ([]Identifier, error)

	// LookupRelations returns the registered family relations for id.
	LookupRelations(ctx context.Context, id string) ([]Relation, error)

	// FetchPerson returns person data for id.
	FetchPerson(ctx context.Context, id string) (PersonRecord, error)

	// ProtectionMarking returns the address-protection marking for id, or
	// empty when the person has none.
	ProtectionMarking(ctx context.Context, id string) (Protection, error)
}
