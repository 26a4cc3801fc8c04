// Package legacy models the predecessor mainframe benefit system, still
// authoritative for unmigrated cases.
package legacy

// Case status codes as stored by the mainframe.
const (
	// StatusCompleted is the terminal "fully completed" code. Records without
	// a granted decision only count as live cases when not in this state.
	StatusCompleted = "FB"

	StatusNotStarted      = "IP"
	StatusUnderProcessing = "UB"
	StatusAwaitingApprove = "SG"
	StatusImplemented     = "FI"
)

// ClosureReasonMigrated marks a benefit closed because the case was migrated
// to the modern system.
const ClosureReasonMigrated = "5"

// Benefit is a granted decision attached to a case record. DecisionSequence
// is the decision month in the mainframe's reversed six-digit encoding; see
// DecodeSequence.
type Benefit struct {
	ClosureReason    string
	DecisionSequence string
}

// Record is one mainframe case or benefit row.
type Record struct {
	Status  string
	Benefit *Benefit
}

// SearchResult splits mainframe hits by which side of the search matched:
// the applicant alias set or the children's.
type SearchResult struct {
	Applicant []Record
	Children  []Record
}
