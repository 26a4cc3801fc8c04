package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Task is one unit of asynchronous work flowing through the inbox.
type Task struct {
	ID       string
	Type     string
	Payload  json.RawMessage
	Metadata map[string]string

	// Attempt counts failed delivery attempts so far. The worker maintains
	// it; submitters leave it zero.
	Attempt int
}

// Handler processes tasks of one type.
type Handler interface {
	// Type returns the task type this handler accepts.
	Type() string
	// Handle processes a single task. Returning a *RescheduleError asks
	// the worker to retry the task at the given time instead of failing.
	Handle(ctx context.Context, t Task) error
}

// RescheduleError signals that a task cannot run yet and should be
// retried later, without counting as a failure.
type RescheduleError struct {
	Reason string
	RunAt  time.Time
}

func (e *RescheduleError) Error() string {
	return fmt.Sprintf("reschedule at %s: %s", e.RunAt.Format(time.RFC3339), e.Reason)
}

// Reschedule builds a RescheduleError for a delay relative to now.
func Reschedule(reason string, delay time.Duration) *RescheduleError {
	return &RescheduleError{Reason: reason, RunAt: time.Now().Add(delay)}
}
