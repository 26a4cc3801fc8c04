// Package identity resolves person identifiers against the population
// registry: national-id aliases, children, protection markings.
package identity

import (
	"context"
	"fmt"
	"log/slog"
)

// Resolver wraps registry lookups and filters them down to what the routing
// and consolidation engines need. It holds no state between calls.
type Resolver struct {
	registry Registry
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver builds a Resolver over the given registry client.
func NewResolver(registry Registry, opts ...Option) (*Resolver, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry client is required")
	}

	r := &Resolver{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ResolveAliases returns the current and historical national-id aliases for
// id. Identifiers of other groups (organization numbers, internal surrogate
// ids) are filtered out. Errors pass through unwrapped-compatible so callers
// can test for sentinel.ErrNotFound.
func (r *Resolver) ResolveAliases(ctx context.Context, id string) (Aliases, error) {
	identifiers, err := r.registry.LookupIdentifiers(ctx, id)
	if err != nil {
		return Aliases{}, err
	}

	var aliases Aliases
	for _, ident := range identifiers {
		if ident.Group != GroupNational {
			continue
		}
		if ident.Historical {
			aliases.Historical = append(aliases.Historical, ident.Value)
		} else {
			aliases.Current = ident.Value
		}
	}
	return aliases, nil
}

// ResolveChildren returns the ids of persons related to id with role CHILD.
func (r *Resolver) ResolveChildren(ctx context.Context, id string) ([]Relation, error) {
	relations, err := r.registry.LookupRelations(ctx, id)
	if err != nil {
		return nil, err
	}

	var children []Relation
	for _, rel := range relations {
		if rel.Role == RoleChild && rel.ID != "" {
			children = append(children, rel)
		}
	}
	return children, nil
}

// FetchPerson returns registry person data for id.
func (r *Resolver) FetchPerson(ctx context.Context, id string) (PersonRecord, error) {
	return r.registry.FetchPerson(ctx, id)
}

// HasStrictProtection reports whether any of the given persons carry the
// strictly-confidential marking. Lookup failures count as unmarked; office
// resolution must not abort on registry noise.
func (r *Resolver) HasStrictProtection(ctx context.Context, ids []string) bool {
	for _, id := range ids {
		marking, err := r.registry.ProtectionMarking(ctx, id)
		if err != nil {
			r.logger.Warn("protection lookup failed, treating as unmarked", "error", err)
			continue
		}
		if marking == ProtectionStrictlyConfidential {
			return true
		}
	}
	return false
}
