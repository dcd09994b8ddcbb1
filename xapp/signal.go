package xapp

import "sync"

// ShutdownSignal is a single-writer, multi-reader, set-once notification.
// It is created during listener startup, set at most once per process
// lifetime, and never reset.
type ShutdownSignal struct {
	once sync.Once
	ch   chan struct{}
}

// NewShutdownSignal creates an unset signal.
func NewShutdownSignal() *ShutdownSignal {
	return &ShutdownSignal{ch: make(chan struct{})}
}

// Set marks the signal. Setting more than once has the same effect as
// setting once.
func (s *ShutdownSignal) Set() {
	s.once.Do(func() { close(s.ch) })
}

// Done returns a channel closed once the signal is set.
func (s *ShutdownSignal) Done() <-chan struct{} {
	return s.ch
}

// IsSet reports whether the signal has been set.
func (s *ShutdownSignal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
