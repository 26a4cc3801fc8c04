package workitem

import "context"

// Client talks to the downstream work-item tracker.
type Client interface {
	// FindOpenByJournal returns open items of the given types that
	// reference the journal entry.
	FindOpenByJournal(ctx context.Context, journalID string, types ...Type) ([]WorkItem, error)

	// FindOpenByPerson returns open items of the given type for a person.
	FindOpenByPerson(ctx context.Context, subjectID string, itemType Type) ([]WorkItem, error)

	// Create opens a new item and returns it with its assigned id.
	Create(ctx context.Context, req CreateRequest) (WorkItem, error)

	// UpdateDescription replaces the description of an existing item.
	UpdateDescription(ctx context.Context, id, description string) error
}
