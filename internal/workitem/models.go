package workitem

import "time"

// Type identifies what kind of work an item asks a caseworker to do.
type Type string

const (
	// TypeFiling asks for a received journal entry to be filed on a case.
	TypeFiling Type = "FILING"
	// TypeCaseHandling asks for an archived journal entry to be processed.
	TypeCaseHandling Type = "CASE_HANDLING"
	// TypeDistribution asks for an outbound document to be distributed.
	TypeDistribution Type = "DISTRIBUTION"
	// TypeLifeEventReview asks a caseworker to assess a life event against a case.
	TypeLifeEventReview Type = "LIFE_EVENT_REVIEW"
)

// Status of a work item in the task tracker.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusInProcess Status = "IN_PROCESS"
	StatusDone      Status = "DONE"
	StatusCancelled Status = "CANCELLED"
)

// Open reports whether the status still requires caseworker attention.
func (s Status) Open() bool {
	return s == StatusOpen || s == StatusInProcess
}

// WorkItem is a tracked unit of manual work in the downstream task system.
type WorkItem struct {
	ID          string
	Type        Type
	Status      Status
	Description string
	SubjectID   string
	CaseID      int64
	Office      string
	Tag         string
	JournalID   string
	DueDate     time.Time
}

// CreateRequest carries the fields a caller controls when opening an item.
type CreateRequest struct {
	Type        Type
	Description string
	SubjectID   string
	CaseID      int64
	Office      string
	Tag         string
	JournalID   string
	DueDate     time.Time
}
