// Package handlers wires the task types consumed from the upstream queue
// to the routing and consolidation engines.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"mottak/internal/benefit"
	"mottak/internal/lifeevent"
	"mottak/internal/office"
	"mottak/internal/routing"
	"mottak/internal/task"
	"mottak/internal/workitem"
)

// Task types accepted from the queue.
const (
	TypeRouteJournalEntry      = "ROUTE_JOURNAL_ENTRY"
	TypeEvaluateLifeEvent      = "EVALUATE_LIFE_EVENT"
	TypeCreateCaseHandlingItem = "CREATE_CASE_HANDLING_ITEM"
)

// FilingRecorder counts filing work-item outcomes.
type FilingRecorder interface {
	RecordFilingItem(line, action string)
}

type noopFilingRecorder struct{}

func (noopFilingRecorder) RecordFilingItem(string, string) {}

// RouteJournalPayload is the payload of a ROUTE_JOURNAL_ENTRY task.
type RouteJournalPayload struct {
	JournalID string       `json:"journalId"`
	SubjectID string       `json:"subjectId"`
	Line      benefit.Line `json:"line"`
	Office    string       `json:"office"`
}

// JournalRouting handles inbound journal entries: derive the routing
// verdict, ensure a filing work item carrying its annotation, and decorate
// it with the resolved office.
type JournalRouting struct {
	engines map[benefit.Line]*routing.Engine
	items   *workitem.Gateway
	offices *office.Resolver
	metrics FilingRecorder
	logger  *slog.Logger
}

// JournalRoutingOption configures optional JournalRouting dependencies.
type JournalRoutingOption func(*JournalRouting)

// WithFilingRecorder sets the filing outcome recorder.
func WithFilingRecorder(r FilingRecorder) JournalRoutingOption {
	return func(h *JournalRouting) {
		if r != nil {
			h.metrics = r
		}
	}
}

// WithRoutingLogger sets the handler logger.
func WithRoutingLogger(l *slog.Logger) JournalRoutingOption {
	return func(h *JournalRouting) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewJournalRouting builds the handler over per-line routing engines.
func NewJournalRouting(engines map[benefit.Line]*routing.Engine, items *workitem.Gateway, offices *office.Resolver, opts ...JournalRoutingOption) (*JournalRouting, error) {
	if len(engines) == 0 {
		return nil, errors.New("handlers: at least one routing engine is required")
	}
	if items == nil {
		return nil, errors.New("handlers: work-item gateway is required")
	}
	if offices == nil {
		return nil, errors.New("handlers: office resolver is required")
	}
	h := &JournalRouting{
		engines: engines,
		items:   items,
		offices: offices,
		metrics: noopFilingRecorder{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *JournalRouting) Type() string { return TypeRouteJournalEntry }

func (h *JournalRouting) Handle(ctx context.Context, t task.Task) error {
	var payload RouteJournalPayload
	if err := json.Unmarshal(t.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	engine, ok := h.engines[payload.Line]
	if !ok {
		return benefit.ErrUnsupportedLine(payload.Line)
	}

	verdict, err := engine.Decide(ctx, payload.SubjectID)
	if err != nil {
		return fmt.Errorf("routing verdict for journal %s: %w", payload.JournalID, err)
	}

	resolved := h.offices.Resolve(ctx, payload.Office, []string{payload.SubjectID})

	action, err := h.items.EnsureFilingItem(ctx, workitem.FilingRequest{
		JournalID:  payload.JournalID,
		Annotation: verdict.Annotation(),
		Office:     resolved,
		Tag:        string(payload.Line.GenericTag()),
	})
	if err != nil {
		return err
	}

	h.metrics.RecordFilingItem(string(payload.Line), string(action))
	h.logger.InfoContext(ctx, "journal entry routed",
		slog.String("journal_id", payload.JournalID),
		slog.String("system", string(verdict.System)),
		slog.String("action", string(action)))
	return nil
}

// LifeEventPayload is the payload of an EVALUATE_LIFE_EVENT task.
type LifeEventPayload struct {
	SubjectID string              `json:"subjectId"`
	EventType lifeevent.EventType `json:"eventType"`
	Line      benefit.Line        `json:"line"`
}

// LifeEvent handles population-registry life events by delegating to the
// consolidation engine.
type LifeEvent struct {
	engine *lifeevent.Engine
}

// NewLifeEvent builds the handler.
func NewLifeEvent(engine *lifeevent.Engine) (*LifeEvent, error) {
	if engine == nil {
		return nil, errors.New("handlers: life-event engine is required")
	}
	return &LifeEvent{engine: engine}, nil
}

func (h *LifeEvent) Type() string { return TypeEvaluateLifeEvent }

func (h *LifeEvent) Handle(ctx context.Context, t task.Task) error {
	var payload LifeEventPayload
	if err := json.Unmarshal(t.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return h.engine.Handle(ctx, lifeevent.Notification{
		SubjectID: payload.SubjectID,
		Type:      payload.EventType,
		Line:      payload.Line,
	})
}

// CaseHandlingPayload is the payload of a CREATE_CASE_HANDLING_ITEM task.
type CaseHandlingPayload struct {
	JournalID string       `json:"journalId"`
	SubjectID string       `json:"subjectId"`
	Line      benefit.Line `json:"line"`
	Office    string       `json:"office"`
}

// CaseHandling opens a case-handling work item once a journal entry has
// been archived onto a case.
type CaseHandling struct {
	items   *workitem.Gateway
	offices *office.Resolver
}

// NewCaseHandling builds the handler.
func NewCaseHandling(items *workitem.Gateway, offices *office.Resolver) (*CaseHandling, error) {
	if items == nil {
		return nil, errors.New("handlers: work-item gateway is required")
	}
	if offices == nil {
		return nil, errors.New("handlers: office resolver is required")
	}
	return &CaseHandling{items: items, offices: offices}, nil
}

func (h *CaseHandling) Type() string { return TypeCreateCaseHandlingItem }

func (h *CaseHandling) Handle(ctx context.Context, t task.Task) error {
	var payload CaseHandlingPayload
	if err := json.Unmarshal(t.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	resolved := h.offices.Resolve(ctx, payload.Office, []string{payload.SubjectID})
	_, err := h.items.CreateCaseHandlingItem(ctx, payload.JournalID, resolved, string(payload.Line.GenericTag()))
	return err
}
