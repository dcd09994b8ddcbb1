package sdl

import (
	"errors"
	"fmt"
)

// ErrClientStopped is returned by operations invoked after Close.
var ErrClientStopped = errors.New("sdl: client is stopped")

// RuntimeError reports a failure from the topology service.
type RuntimeError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sdl: %s: %v", e.Message, e.Err)
	}
	return "sdl: " + e.Message
}

// Unwrap returns the underlying error.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// wrapRemote converts transport errors into RuntimeError, passing
// context cancellation through untouched.
func wrapRemote(err error) error {
	if err == nil || errors.Is(err, ErrClientStopped) {
		return err
	}
	return &RuntimeError{Message: "topology request failed", Err: err}
}
