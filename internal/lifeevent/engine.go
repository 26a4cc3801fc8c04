package lifeevent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mottak/internal/benefit"
	"mottak/internal/casesystem"
	"mottak/internal/identity"
	"mottak/internal/legacy"
	"mottak/internal/task"
	"mottak/internal/workitem"
	"mottak/pkg/sentinel"
	pkgstrings "mottak/pkg/strings"
)

// deathDateRecheckDelay is how long to wait before re-evaluating a death
// notification whose date the registry has not confirmed yet.
const deathDateRecheckDelay = 24 * time.Hour

// Recorder counts consolidation outcomes per line and event type.
type Recorder interface {
	RecordConsolidation(line, event, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordConsolidation(string, string, string) {}

// Engine is the life-event consolidation engine. It is stateless: every
// invocation re-derives household and case state from the registry, the
// case systems and the work-item tracker, so redelivered notifications
// converge on the same open review item.
type Engine struct {
	identity *identity.Resolver
	legacy   legacy.Client
	items    *workitem.Gateway
	policies map[benefit.Line]Policy
	metrics  Recorder
	logger   *slog.Logger
	clock    func() time.Time
}

// EngineOption configures optional Engine dependencies.
type EngineOption func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.metrics = r
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// NewEngine validates dependencies and builds an Engine over the given
// per-line policies.
func NewEngine(resolver *identity.Resolver, legacyClient legacy.Client, items *workitem.Gateway, policies []Policy, opts ...EngineOption) (*Engine, error) {
	if resolver == nil {
		return nil, errors.New("lifeevent: identity resolver is required")
	}
	if legacyClient == nil {
		return nil, errors.New("lifeevent: legacy client is required")
	}
	if items == nil {
		return nil, errors.New("lifeevent: work-item gateway is required")
	}
	if len(policies) == 0 {
		return nil, errors.New("lifeevent: at least one policy is required")
	}

	e := &Engine{
		identity: resolver,
		legacy:   legacyClient,
		items:    items,
		policies: make(map[benefit.Line]Policy, len(policies)),
		metrics:  noopRecorder{},
		logger:   slog.Default(),
		clock:    time.Now,
	}
	for _, p := range policies {
		if _, dup := e.policies[p.Line()]; dup {
			return nil, fmt.Errorf("lifeevent: duplicate policy for line %s", p.Line())
		}
		e.policies[p.Line()] = p
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Handle processes one notification to completion. A *task.RescheduleError
// return asks the queue to redeliver later; any other error is left to the
// queue's bounded retry policy.
func (e *Engine) Handle(ctx context.Context, n Notification) error {
	policy, ok := e.policies[n.Line]
	if !ok {
		return benefit.ErrUnsupportedLine(n.Line)
	}

	label := labelFor(n.Type)
	if label == "" {
		e.logger.DebugContext(ctx, "event type not handled, dropping",
			slog.String("event_type", string(n.Type)))
		return nil
	}

	aliases, err := e.identity.ResolveAliases(ctx, n.SubjectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			e.logger.InfoContext(ctx, "life-event subject unknown to registry, dropping",
				slog.String("event_type", string(n.Type)))
			return nil
		}
		return fmt.Errorf("resolve subject aliases: %w", err)
	}
	if aliases.Current != n.SubjectID {
		// Notification carries a stale id; the registry will redeliver
		// under the current one.
		return nil
	}

	eventDate, proceed, err := e.eventDate(ctx, n)
	if err != nil || !proceed {
		return err
	}

	parties, err := policy.AffectedParties(ctx, aliases, n.Type)
	if err != nil {
		return fmt.Errorf("find affected cases: %w", err)
	}

	for _, party := range parties {
		var c *casesystem.Case
		if n.Type == EventMaritalStatus {
			c, err = policy.Cases().FetchCase(ctx, party.CaseID)
			if err != nil {
				return fmt.Errorf("fetch case %d: %w", party.CaseID, err)
			}
			ok, err := e.admissible(ctx, c, eventDate, pkgstrings.DedupeAndTrim(aliases.All()))
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		if err := e.mergeOrCreate(ctx, policy, n, label, party, c); err != nil {
			return err
		}
	}
	return nil
}

// eventDate resolves the date a review item anchors on. proceed=false means
// the event is inadmissible and silently dropped.
func (e *Engine) eventDate(ctx context.Context, n Notification) (time.Time, bool, error) {
	switch n.Type {
	case EventDeath:
		person, err := e.identity.FetchPerson(ctx, n.SubjectID)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("fetch person: %w", err)
		}
		if person.DeathDate == nil {
			return time.Time{}, false, &task.RescheduleError{
				Reason: "death date not yet confirmed by registry",
				RunAt:  e.clock().Add(deathDateRecheckDelay),
			}
		}
		return *person.DeathDate, true, nil

	case EventMaritalStatus:
		person, err := e.identity.FetchPerson(ctx, n.SubjectID)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("fetch person: %w", err)
		}
		latest, ok := latestDatedMarital(person.Marital)
		if !ok || latest.Status != identity.MaritalStatusMarried {
			return time.Time{}, false, nil
		}
		return *latest.Date(), true, nil
	}

	// Emigration needs no date.
	return time.Time{}, true, nil
}

// latestDatedMarital picks the marital record with the latest date.
// Undated records are ignored entirely.
func latestDatedMarital(records []identity.MaritalRecord) (identity.MaritalRecord, bool) {
	var latest identity.MaritalRecord
	found := false
	for _, rec := range records {
		d := rec.Date()
		if d == nil {
			continue
		}
		if !found || d.After(*latest.Date()) {
			latest = rec
			found = true
		}
	}
	return latest, found
}

func (e *Engine) mergeOrCreate(ctx context.Context, policy Policy, n Notification, label workitem.Label, party casesystem.CaseParty, c *casesystem.Case) error {
	existing, err := e.items.FindOpenReviewItem(ctx, party.PersonID, label)
	if err != nil {
		return err
	}

	if existing != nil {
		st := workitem.ParseDescription(label, existing.Description)
		st = addSubject(st, party, n.SubjectID)
		if err := e.items.UpdateDescription(ctx, *existing, st.String()); err != nil {
			return err
		}
		e.metrics.RecordConsolidation(string(n.Line), string(n.Type), "merged")
		return nil
	}

	if c == nil {
		c, err = policy.Cases().FetchCase(ctx, party.CaseID)
		if err != nil {
			return fmt.Errorf("fetch case %d: %w", party.CaseID, err)
		}
	}
	d := c.LatestClosedDecision()
	if d == nil {
		d = c.ActiveDecision()
	}

	st := addSubject(workitem.DescriptionState{Label: label}, party, n.SubjectID)
	if _, err := e.items.CreateReviewItem(ctx, party.PersonID, party.CaseID, st.String(), string(policy.Tag(d))); err != nil {
		return err
	}
	e.metrics.RecordConsolidation(string(n.Line), string(n.Type), "created")
	e.logger.InfoContext(ctx, "life-event review item created",
		slog.String("event_type", string(n.Type)),
		slog.String("line", string(n.Line)),
		slog.Int64("case_id", party.CaseID))
	return nil
}

// addSubject folds the notified person into the description: as the
// applicant when they are the case's own applicant, otherwise as a child.
func addSubject(st workitem.DescriptionState, party casesystem.CaseParty, subjectID string) workitem.DescriptionState {
	if party.Role == casesystem.RoleApplicant {
		return st.AddApplicant()
	}
	return st.AddChild(subjectID)
}
