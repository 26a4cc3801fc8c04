// Package office resolves the raw office code on a journal entry to an
// office that can actually receive manual case work.
package office

import (
	"context"
	"fmt"
	"log/slog"

	"mottak/internal/identity"
)

// SecureOffice handles everything involving strictly protected persons.
const SecureOffice = "2103"

// StatusTerminated is the office-register state for a closed-down office.
const StatusTerminated = "TERMINATED"

// redirects maps decommissioned offices to their successors.
var redirects = map[string]string{
	"2101": "4806",
	"4847": "4817",
}

// Office is one row from the office register.
type Office struct {
	Code            string
	Status          string
	AcceptsCaseWork bool
}

// Client is the office-register client.
type Client interface {
	FetchOffice(ctx context.Context, code string) (Office, error)
}

// Resolver applies the office routing rules.
type Resolver struct {
	client   Client
	identity *identity.Resolver
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

// NewResolver builds an office resolver.
func NewResolver(client Client, resolver *identity.Resolver, opts ...Option) (*Resolver, error) {
	if client == nil {
		return nil, fmt.Errorf("office client is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("identity resolver is required")
	}

	r := &Resolver{client: client, identity: resolver, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve maps rawOffice to a usable office code, or "" when the work item
// should be left without an office so downstream distribution picks one.
// A strictly-confidential marking on any involved person overrides every
// other rule.
func (r *Resolver) Resolve(ctx context.Context, rawOffice string, involved []string) string {
	if r.identity.HasStrictProtection(ctx, involved) {
		return SecureOffice
	}
	if successor, ok := redirects[rawOffice]; ok {
		return successor
	}
	if rawOffice == "" {
		return ""
	}

	office, err := r.client.FetchOffice(ctx, rawOffice)
	if err != nil {
		r.logger.Warn("office lookup failed, leaving office unset", "office", rawOffice, "error", err)
		return ""
	}
	if office.Status == StatusTerminated {
		return ""
	}
	if !office.AcceptsCaseWork {
		r.logger.Warn("office cannot receive case work", "office", rawOffice)
		return ""
	}
	return rawOffice
}
