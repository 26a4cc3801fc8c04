package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"mottak/pkg/sentinel"
)

type stubHandler struct {
	taskType string
	mu       sync.Mutex
	handled  []Task
	results  []error
	notify   chan struct{}
}

func newStubHandler(taskType string, results ...error) *stubHandler {
	return &stubHandler{taskType: taskType, results: results, notify: make(chan struct{}, 16)}
}

func (h *stubHandler) Type() string { return h.taskType }

func (h *stubHandler) Handle(ctx context.Context, t Task) error {
	h.mu.Lock()
	h.handled = append(h.handled, t)
	var err error
	if len(h.results) > 0 {
		err = h.results[0]
		h.results = h.results[1:]
	}
	h.mu.Unlock()
	h.notify <- struct{}{}
	return err
}

func (h *stubHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func (h *stubHandler) task(i int) Task {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.handled[i]
}

type WorkerSuite struct {
	suite.Suite
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

func (s *WorkerSuite) await(notify chan struct{}) {
	select {
	case <-notify:
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for task")
	}
}

func (s *WorkerSuite) TestDispatcherValidation() {
	s.Run("duplicate handler types are rejected", func() {
		_, err := NewDispatcher(newStubHandler("A"), newStubHandler("A"))
		s.Error(err)
	})

	s.Run("unknown type fails dispatch", func() {
		d, err := NewDispatcher(newStubHandler("A"))
		s.Require().NoError(err)
		err = d.Dispatch(context.Background(), Task{Type: "B"})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *WorkerSuite) TestSubmitRejectsUnknownType() {
	d, err := NewDispatcher(newStubHandler("A"))
	s.Require().NoError(err)
	w, err := NewWorker(d, 4)
	s.Require().NoError(err)

	err = w.Submit(Task{Type: "B"})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *WorkerSuite) TestSubmitRejectsWhenFull() {
	d, err := NewDispatcher(newStubHandler("A"))
	s.Require().NoError(err)
	w, err := NewWorker(d, 1)
	s.Require().NoError(err)

	s.Require().NoError(w.Submit(Task{Type: "A"}))
	err = w.Submit(Task{Type: "A"})
	s.ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *WorkerSuite) TestWorkerProcessesTasks() {
	h := newStubHandler("A")
	d, err := NewDispatcher(h)
	s.Require().NoError(err)
	w, err := NewWorker(d, 4)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	s.Require().NoError(w.Submit(Task{ID: "t1", Type: "A"}))
	s.await(h.notify)
	s.Equal(1, h.count())
}

func (s *WorkerSuite) TestFailedTaskIsRetried() {
	h := newStubHandler("A", errors.New("boom"), nil)
	d, err := NewDispatcher(h)
	s.Require().NoError(err)
	w, err := NewWorker(d, 4, WithRetryBackoff(time.Millisecond))
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	s.Require().NoError(w.Submit(Task{ID: "t1", Type: "A"}))
	s.await(h.notify)
	s.await(h.notify)
	s.Equal(2, h.count())
	s.Equal("t1", h.task(1).ID)
	s.Equal(1, h.task(1).Attempt)
}

func (s *WorkerSuite) TestRetriesAreBounded() {
	h := newStubHandler("A", errors.New("boom"), errors.New("boom"), errors.New("boom"))
	d, err := NewDispatcher(h)
	s.Require().NoError(err)
	w, err := NewWorker(d, 4, WithRetryBackoff(time.Millisecond))
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	s.Require().NoError(w.Submit(Task{ID: "t1", Type: "A"}))
	s.await(h.notify)
	s.await(h.notify)
	s.await(h.notify)

	// Exhausting the attempts drops the task but not the loop.
	s.Require().NoError(w.Submit(Task{ID: "t2", Type: "A"}))
	s.await(h.notify)
	s.Equal(4, h.count())
	s.Equal("t2", h.task(3).ID)
}

func (s *WorkerSuite) TestRescheduledTaskIsRedelivered() {
	h := newStubHandler("A",
		&RescheduleError{Reason: "not ready", RunAt: time.Now().Add(5 * time.Millisecond)},
		nil)
	d, err := NewDispatcher(h)
	s.Require().NoError(err)
	w, err := NewWorker(d, 4)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	s.Require().NoError(w.Submit(Task{ID: "t1", Type: "A"}))
	s.await(h.notify)
	s.await(h.notify)
	s.Equal(2, h.count())
}

func (s *WorkerSuite) TestRunStopsOnContextCancel() {
	d, err := NewDispatcher(newStubHandler("A"))
	s.Require().NoError(err)
	w, err := NewWorker(d, 4)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(w.Run(ctx), context.Canceled)
}
