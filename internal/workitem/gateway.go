package workitem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mottak/internal/journal"
	"mottak/pkg/sentinel"
)

// FilingAction says what EnsureFilingItem did for a journal entry.
type FilingAction string

const (
	FilingCreated FilingAction = "created"
	FilingUpdated FilingAction = "updated"
	FilingSkipped FilingAction = "skipped"
)

// FilingRequest carries the routing outcome to attach to a filing item.
type FilingRequest struct {
	JournalID  string
	Annotation string
	Office     string
	Tag        string
}

// Gateway wraps the work-item tracker with the creation and merge rules
// the inbound flows share.
type Gateway struct {
	items    Client
	journals journal.Client
	logger   *slog.Logger
	now      func() time.Time
}

// GatewayOption configures optional Gateway dependencies.
type GatewayOption func(*Gateway)

// WithLogger sets the gateway logger.
func WithLogger(l *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) GatewayOption {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGateway validates dependencies and builds a Gateway.
func NewGateway(items Client, journals journal.Client, opts ...GatewayOption) (*Gateway, error) {
	if items == nil {
		return nil, errors.New("workitem: item client is required")
	}
	if journals == nil {
		return nil, errors.New("workitem: journal client is required")
	}
	g := &Gateway{
		items:    items,
		journals: journals,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// EnsureFilingItem makes sure a received journal entry has exactly one
// open filing item carrying the routing annotation. An already-archived
// entry is skipped; any other journal status is unexpected and fails so
// the task can retry once the upstream state settles.
func (g *Gateway) EnsureFilingItem(ctx context.Context, req FilingRequest) (FilingAction, error) {
	entry, err := g.journals.FetchEntry(ctx, req.JournalID)
	if err != nil {
		return "", fmt.Errorf("fetch journal entry %s: %w", req.JournalID, err)
	}

	switch entry.Status {
	case journal.StatusReceived:
	case journal.StatusArchived:
		g.logger.InfoContext(ctx, "journal entry already archived, no filing item needed",
			slog.String("journal_id", req.JournalID))
		return FilingSkipped, nil
	default:
		return "", fmt.Errorf("journal entry %s has status %s: %w",
			req.JournalID, entry.Status, sentinel.ErrInvalidState)
	}

	open, err := g.items.FindOpenByJournal(ctx, req.JournalID, TypeFiling, TypeDistribution)
	if err != nil {
		return "", fmt.Errorf("find open items for journal %s: %w", req.JournalID, err)
	}

	if len(open) > 0 {
		existing := open[0]
		if req.Annotation == "" || existing.Description == req.Annotation {
			return FilingSkipped, nil
		}
		if err := g.items.UpdateDescription(ctx, existing.ID, req.Annotation); err != nil {
			return "", fmt.Errorf("update filing item %s: %w", existing.ID, err)
		}
		g.logger.InfoContext(ctx, "filing item annotated",
			slog.String("journal_id", req.JournalID),
			slog.String("item_id", existing.ID))
		return FilingUpdated, nil
	}

	it, err := g.items.Create(ctx, CreateRequest{
		Type:        TypeFiling,
		Description: req.Annotation,
		SubjectID:   entry.SubjectID,
		Office:      req.Office,
		Tag:         req.Tag,
		JournalID:   req.JournalID,
		DueDate:     DueDate(g.now()),
	})
	if err != nil {
		return "", fmt.Errorf("create filing item for journal %s: %w", req.JournalID, err)
	}
	g.logger.InfoContext(ctx, "filing item created",
		slog.String("journal_id", req.JournalID),
		slog.String("item_id", it.ID))
	return FilingCreated, nil
}

// CreateCaseHandlingItem opens a case-handling item for a journal entry
// that has been archived onto a case. The entry must be archived and must
// not already have open filing or case-handling items.
func (g *Gateway) CreateCaseHandlingItem(ctx context.Context, journalID, office, tag string) (WorkItem, error) {
	entry, err := g.journals.FetchEntry(ctx, journalID)
	if err != nil {
		return WorkItem{}, fmt.Errorf("fetch journal entry %s: %w", journalID, err)
	}
	if entry.Status != journal.StatusArchived {
		return WorkItem{}, fmt.Errorf("journal entry %s has status %s, want %s: %w",
			journalID, entry.Status, journal.StatusArchived, sentinel.ErrInvalidState)
	}

	open, err := g.items.FindOpenByJournal(ctx, journalID, TypeFiling, TypeCaseHandling)
	if err != nil {
		return WorkItem{}, fmt.Errorf("find open items for journal %s: %w", journalID, err)
	}
	if len(open) > 0 {
		return WorkItem{}, fmt.Errorf("journal entry %s already has %d open items: %w",
			journalID, len(open), sentinel.ErrConflict)
	}

	it, err := g.items.Create(ctx, CreateRequest{
		Type:      TypeCaseHandling,
		SubjectID: entry.SubjectID,
		CaseID:    entry.CaseID,
		Office:    office,
		Tag:       tag,
		JournalID: journalID,
		DueDate:   DueDate(g.now()),
	})
	if err != nil {
		return WorkItem{}, fmt.Errorf("create case-handling item for journal %s: %w", journalID, err)
	}
	return it, nil
}

// FindOpenReviewItem returns the open life-event review item for a person
// whose description carries the given label, or nil when none exists.
func (g *Gateway) FindOpenReviewItem(ctx context.Context, subjectID string, label Label) (*WorkItem, error) {
	open, err := g.items.FindOpenByPerson(ctx, subjectID, TypeLifeEventReview)
	if err != nil {
		return nil, fmt.Errorf("find review items for person: %w", err)
	}
	for i := range open {
		if strings.HasPrefix(open[i].Description, string(label)) {
			return &open[i], nil
		}
	}
	return nil, nil
}

// CreateReviewItem opens a life-event review item.
func (g *Gateway) CreateReviewItem(ctx context.Context, subjectID string, caseID int64, description, tag string) (WorkItem, error) {
	it, err := g.items.Create(ctx, CreateRequest{
		Type:        TypeLifeEventReview,
		Description: description,
		SubjectID:   subjectID,
		CaseID:      caseID,
		Tag:         tag,
		DueDate:     DueDate(g.now()),
	})
	if err != nil {
		return WorkItem{}, fmt.Errorf("create review item: %w", err)
	}
	return it, nil
}

// UpdateDescription replaces an item's description, skipping the write
// when nothing changed.
func (g *Gateway) UpdateDescription(ctx context.Context, item WorkItem, description string) error {
	if item.Description == description {
		return nil
	}
	if err := g.items.UpdateDescription(ctx, item.ID, description); err != nil {
		return fmt.Errorf("update item %s: %w", item.ID, err)
	}
	return nil
}
