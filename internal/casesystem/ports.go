package casesystem

import "context"

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Client is the modern case-system client for one benefit line.
// Implementations wrap the back-end's HTTP API.
//
// Search results are CaseParty rows: PersonID is always the case's own
// applicant (the person a work item would be raised on), while Role records
// how the searched ids matched — as the applicant, or as a child tied to the
// case.
type Client interface {
	// FindCasesForApplicantOrRecipient returns a row per case where any of
	// applicantIDs is the case applicant, or any of childIDs is a
	// benefit-receiving child on the case.
	FindCasesForApplicantOrRecipient(ctx context.Context, applicantIDs []string, childIDs []string) ([]CaseParty, error)

	// FindCasesForActiveBenefit is the narrower search used for
	// marital-status events: only cases currently paying the extended or
	// ordinary benefit.
	FindCasesForActiveBenefit(ctx context.Context, ids []string) ([]CaseParty, error)

	// FetchCase returns the full case with its decision history.
	FetchCase(ctx context.Context, caseID int64) (*Case, error)
}
