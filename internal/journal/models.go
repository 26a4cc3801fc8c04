// Package journal models archived inbound document batches ("journal
// entries") and the archive client port.
package journal

import "context"

// Status is the archive lifecycle state of a journal entry.
type Status string

const (
	// StatusReceived means the entry has arrived but is not yet filed.
	StatusReceived Status = "RECEIVED"
	// StatusArchived means filing completed; the entry is immutable.
	StatusArchived Status = "ARCHIVED"
	// StatusExpedited covers entries handled outside the manual flow.
	StatusExpedited Status = "EXPEDITED"
)

// Entry is one journal entry as returned by the document archive.
type Entry struct {
	ID         string
	Status     Status
	Title      string
	SubjectID  string
	CaseID     int64
	OfficeCode string
}

// Client is the document-archive client.
type Client interface {
	// FetchEntry returns the journal entry, or a wrapped
	// sentinel.ErrNotFound when the archive does not know the id.
	FetchEntry(ctx context.Context, id string) (*Entry, error)
}
