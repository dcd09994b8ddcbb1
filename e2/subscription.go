package e2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/kbukum/xappkit/httpclient/sse"
	"github.com/kbukum/xappkit/resilience"
)

// ErrClientStopped is returned by operations invoked after Close.
var ErrClientStopped = errors.New("e2: client is stopped")

// RuntimeError reports a failure from the E2 termination service.
type RuntimeError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("e2: %s: %v", e.Message, e.Err)
	}
	return "e2: " + e.Message
}

// Unwrap returns the underlying error.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Subscription is a handle to one active E2 subscription.
type Subscription struct {
	ID     string
	nodeID string
	client *Client
}

// Stream delivers indications into ch until the subscription ends or ctx is
// cancelled. The channel is closed when the stream terminates.
func (s *Subscription) Stream(ctx context.Context, ch chan<- Indication) error {
	if s.client.stopped.Load() {
		return ErrClientStopped
	}

	path := fmt.Sprintf("/nodes/%s/subscriptions/%s/indications",
		url.PathEscape(s.nodeID), url.PathEscape(s.ID))
	stream, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(),
		func() (sse.Reader, error) {
			return s.client.rest.Stream(ctx, path)
		})
	if err != nil {
		return &RuntimeError{Message: "opening indication stream", Err: err}
	}
	defer stream.Close()
	defer close(ch)

	for {
		event, err := stream.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &RuntimeError{Message: "reading indication stream", Err: err}
		}

		var ind Indication
		if err := json.Unmarshal([]byte(event.Data), &ind); err != nil {
			return &RuntimeError{Message: "decoding indication", Err: err}
		}

		select {
		case ch <- ind:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close deletes the subscription on the E2 termination service.
func (s *Subscription) Close(ctx context.Context) error {
	if s.client.stopped.Load() {
		return ErrClientStopped
	}

	path := fmt.Sprintf("/nodes/%s/subscriptions/%s",
		url.PathEscape(s.nodeID), url.PathEscape(s.ID))
	if err := s.client.rest.Delete(ctx, path); err != nil {
		return &RuntimeError{Message: "deleting subscription", Err: err}
	}
	return nil
}
