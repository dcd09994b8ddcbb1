package sdl

import (
	"context"
	"encoding/json"
	"io"

	"github.com/kbukum/xappkit/httpclient/sse"
	"github.com/kbukum/xappkit/resilience"
)

// RanFunction describes a RAN function exposed by an E2 node.
type RanFunction struct {
	ID         string          `json:"id"`
	OID        string          `json:"oid"`
	Definition json.RawMessage `json:"definition,omitempty"`
}

// E2Node describes one connected E2 node.
type E2Node struct {
	ID           string        `json:"id"`
	RanFunctions []RanFunction `json:"ran_functions"`
}

// WatchE2Connections streams E2 node connection events into ch until the
// stream ends or ctx is cancelled. The channel is closed when the watch
// terminates.
func (c *Client) WatchE2Connections(ctx context.Context, ch chan<- E2Node) error {
	if c.stopped.Load() {
		return ErrClientStopped
	}

	// Dialing the watch stream is retried; the topology service may not be
	// reachable yet when the xApp starts.
	stream, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(),
		func() (sse.Reader, error) {
			return c.rest.Stream(ctx, "/nodes/watch")
		})
	if err != nil {
		return wrapRemote(err)
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
			return wrapRemote(err)
		}

		// Only additions represent new connections.
		if event.Event != "" && event.Event != "added" {
			continue
		}

		var node E2Node
		if err := json.Unmarshal([]byte(event.Data), &node); err != nil {
			return &RuntimeError{Message: "decoding watch event", Err: err}
		}

		select {
		case ch <- node:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
