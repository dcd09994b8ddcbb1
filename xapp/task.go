package xapp

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
)

// TaskState describes where a supervised task is in its lifecycle.
type TaskState int32

const (
	// TaskRunning means the task's goroutine has not returned yet.
	TaskRunning TaskState = iota
	// TaskCancelled means the task terminated because its stop was
	// requested. Treated as clean shutdown.
	TaskCancelled
	// TaskCompleted means the task returned nil.
	TaskCompleted
	// TaskFailed means the task returned a non-cancellation error.
	TaskFailed
)

// String returns the state name.
func (s TaskState) String() string {
	switch s {
	case TaskRunning:
		return "running"
	case TaskCancelled:
		return "cancelled"
	case TaskCompleted:
		return "completed"
	case TaskFailed:
		return "failed"
	}
	return "unknown"
}

// Task supervises one background activity. Cancellation is cooperative:
// RequestStop cancels the task's context and the task is expected to
// observe it and return; Join then reports the outcome.
type Task struct {
	id            string
	name          string
	cancel        context.CancelFunc
	done          chan struct{}
	err           error
	state         atomic.Int32
	stopRequested atomic.Bool
}

// startTask runs fn in a new goroutine under a fresh cancellable context
// derived from parent and returns its supervision handle.
func startTask(parent context.Context, name string, fn func(ctx context.Context) error) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		id:     uuid.New().String(),
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	t.state.Store(int32(TaskRunning))

	go func() {
		defer close(t.done)
		err := fn(ctx)
		switch {
		case err == nil:
			t.state.Store(int32(TaskCompleted))
		case errors.Is(err, context.Canceled) && t.stopRequested.Load():
			t.state.Store(int32(TaskCancelled))
		default:
			t.err = err
			t.state.Store(int32(TaskFailed))
		}
	}()

	return t
}

// ID returns the task's identity.
func (t *Task) ID() string {
	return t.id
}

// Name returns the task's name.
func (t *Task) Name() string {
	return t.name
}

// State returns the task's current lifecycle state.
func (t *Task) State() TaskState {
	return TaskState(t.state.Load())
}

// RequestStop asks the task to terminate by cancelling its context. The
// request is advisory; the task decides when to observe it.
func (t *Task) RequestStop() {
	t.stopRequested.Store(true)
	t.cancel()
}

// Join blocks until the task terminates or ctx expires. Termination due
// to a requested stop is converted to success; any other failure is
// returned as-is.
func (t *Task) Join(ctx context.Context) error {
	select {
	case <-t.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if t.State() == TaskFailed {
		return t.err
	}
	return nil
}
