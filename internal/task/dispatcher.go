package task

import (
	"context"
	"fmt"

	"mottak/pkg/sentinel"
)

// Dispatcher routes tasks to the handler registered for their type.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher builds a dispatcher over the given handlers. Registering
// two handlers for the same type is a wiring bug and fails fast.
func NewDispatcher(handlers ...Handler) (*Dispatcher, error) {
	d := &Dispatcher{handlers: make(map[string]Handler, len(handlers))}
	for _, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("task: nil handler")
		}
		if _, dup := d.handlers[h.Type()]; dup {
			return nil, fmt.Errorf("task: duplicate handler for type %s", h.Type())
		}
		d.handlers[h.Type()] = h
	}
	return d, nil
}

// Known reports whether a handler is registered for the type.
func (d *Dispatcher) Known(taskType string) bool {
	_, ok := d.handlers[taskType]
	return ok
}

// Dispatch runs the task through its handler.
func (d *Dispatcher) Dispatch(ctx context.Context, t Task) error {
	h, ok := d.handlers[t.Type]
	if !ok {
		return fmt.Errorf("no handler for task type %s: %w", t.Type, sentinel.ErrNotFound)
	}
	return h.Handle(ctx, t)
}
