package legacy

import "context"

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Client is the legacy mainframe client. Implementations wrap its HTTP
// facade. All searches take the full alias sets; the mainframe matches any.
type Client interface {
	// FindActiveBenefit returns currently running benefit payments.
	FindActiveBenefit(ctx context.Context, applicantIDs []string, childIDs []string) (SearchResult, error)

	// FindCaseRecords returns case rows regardless of payment state.
	FindCaseRecords(ctx context.Context, applicantIDs []string, childIDs []string) (SearchResult, error)

	// FindHistoricalDecisions returns every benefit decision ever granted to
	// the given ids, including closed ones.
	FindHistoricalDecisions(ctx context.Context, ids []string) ([]Record, error)
}
