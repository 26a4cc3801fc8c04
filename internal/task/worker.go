package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mottak/pkg/requestcontext"
	"mottak/pkg/sentinel"
)

// Recorder counts task outcomes. The zero-dependency variant is used
// when no metrics backend is wired.
type Recorder interface {
	RecordTask(taskType, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordTask(string, string) {}

// maxAttempts is how many times a task may fail before it is dropped.
const maxAttempts = 3

// defaultRetryBackoff is the delay before a failed task is redelivered.
const defaultRetryBackoff = 5 * time.Second

// Worker consumes tasks from a channel inbox and dispatches them. A
// handler returning *RescheduleError gets its task re-enqueued after the
// requested delay without counting as a failure; other handler errors are
// retried with a fixed backoff up to maxAttempts, then dropped. Neither is
// fatal to the loop.
type Worker struct {
	dispatcher *Dispatcher
	inbox      chan Task
	logger     *slog.Logger
	metrics    Recorder
	clock      func() time.Time
	backoff    time.Duration
}

// WorkerOption configures optional Worker dependencies.
type WorkerOption func(*Worker)

// WithLogger sets the worker logger.
func WithLogger(l *slog.Logger) WorkerOption {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRecorder sets the task outcome recorder.
func WithRecorder(r Recorder) WorkerOption {
	return func(w *Worker) {
		if r != nil {
			w.metrics = r
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) WorkerOption {
	return func(w *Worker) {
		if now != nil {
			w.clock = now
		}
	}
}

// WithRetryBackoff overrides the delay between failed delivery attempts.
func WithRetryBackoff(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.backoff = d
		}
	}
}

// NewWorker validates dependencies and builds a Worker with a bounded inbox.
func NewWorker(dispatcher *Dispatcher, inboxSize int, opts ...WorkerOption) (*Worker, error) {
	if dispatcher == nil {
		return nil, errors.New("task: dispatcher is required")
	}
	if inboxSize <= 0 {
		return nil, fmt.Errorf("task: inbox size must be positive, got %d", inboxSize)
	}
	w := &Worker{
		dispatcher: dispatcher,
		inbox:      make(chan Task, inboxSize),
		logger:     slog.Default(),
		metrics:    noopRecorder{},
		clock:      time.Now,
		backoff:    defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Submit enqueues a task without blocking. A full inbox or an unknown
// task type is reported to the caller.
func (w *Worker) Submit(t Task) error {
	if !w.dispatcher.Known(t.Type) {
		return fmt.Errorf("task type %s: %w", t.Type, sentinel.ErrNotFound)
	}
	select {
	case w.inbox <- t:
		return nil
	default:
		return fmt.Errorf("task inbox full: %w", sentinel.ErrUnavailable)
	}
}

// Run consumes the inbox until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-w.inbox:
			w.process(ctx, t)
		}
	}
}

func (w *Worker) process(ctx context.Context, t Task) {
	ctx = requestcontext.WithRequestID(ctx, t.ID)
	err := w.dispatcher.Dispatch(ctx, t)
	if err == nil {
		w.metrics.RecordTask(t.Type, "ok")
		return
	}

	var resched *RescheduleError
	if errors.As(err, &resched) {
		w.metrics.RecordTask(t.Type, "rescheduled")
		w.logger.InfoContext(ctx, "task rescheduled",
			slog.String("task_id", t.ID),
			slog.String("task_type", t.Type),
			slog.String("reason", resched.Reason),
			slog.Time("run_at", resched.RunAt))
		w.requeue(ctx, t, resched.RunAt)
		return
	}

	t.Attempt++
	if t.Attempt < maxAttempts {
		w.metrics.RecordTask(t.Type, "retried")
		w.logger.WarnContext(ctx, "task failed, retrying",
			slog.String("task_id", t.ID),
			slog.String("task_type", t.Type),
			slog.Int("attempt", t.Attempt),
			slog.String("error", err.Error()))
		w.requeue(ctx, t, w.clock().Add(w.backoff))
		return
	}

	w.metrics.RecordTask(t.Type, "failed")
	w.logger.ErrorContext(ctx, "task failed",
		slog.String("task_id", t.ID),
		slog.String("task_type", t.Type),
		slog.Int("attempt", t.Attempt),
		slog.String("error", err.Error()))
}

func (w *Worker) requeue(ctx context.Context, t Task, runAt time.Time) {
	delay := runAt.Sub(w.clock())
	if delay <= 0 {
		delay = time.Millisecond
	}
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			select {
			case w.inbox <- t:
			case <-ctx.Done():
			}
		}
	}()
}
