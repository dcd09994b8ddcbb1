package sdl

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/kbukum/xappkit/httpclient"
)

// Client talks to the topology service.
type Client struct {
	rest    *httpclient.Client
	stopped atomic.Bool
}

// New creates a topology client from the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rest, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.Endpoint,
		Timeout: cfg.Timeout,
		TLS:     cfg.TLS,
	})
	if err != nil {
		return nil, err
	}
	return &Client{rest: rest}, nil
}

// Cell describes one cell attached to an E2 node.
type Cell struct {
	CellObjectID string `json:"cell_object_id"`
	EntityID     string `json:"entity_id"`
}

// GetCellIDs returns the cell object IDs attached to the given E2 node.
func (c *Client) GetCellIDs(ctx context.Context, e2NodeID string) ([]string, error) {
	cells, err := c.listCells(ctx, e2NodeID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(cells))
	for _, cell := range cells {
		ids = append(ids, cell.CellObjectID)
	}
	return ids, nil
}

// GetCellData returns the aspect value stored under key for the given cell,
// or nil when the key has no value.
func (c *Client) GetCellData(ctx context.Context, e2NodeID, cellID, key string) ([]byte, error) {
	entityID, err := c.cellEntityID(ctx, e2NodeID, cellID)
	if err != nil {
		return nil, err
	}

	var aspects map[string]string
	path := fmt.Sprintf("/entities/%s/aspects", url.PathEscape(entityID))
	if err := c.get(ctx, path, &aspects); err != nil {
		return nil, err
	}
	value, ok := aspects[key]
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

// SetCellData stores data under key for the given cell. A nil value removes
// the key.
func (c *Client) SetCellData(ctx context.Context, e2NodeID, cellID, key string, data []byte) error {
	entityID, err := c.cellEntityID(ctx, e2NodeID, cellID)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/entities/%s/aspects/%s", url.PathEscape(entityID), url.PathEscape(key))
	if data == nil {
		if err := c.rest.Delete(ctx, path); err != nil {
			if httpclient.IsNotFound(err) {
				return nil
			}
			return wrapRemote(err)
		}
		return nil
	}

	body := map[string]string{"value": string(data)}
	if err := c.rest.PutJSON(ctx, path, body, nil); err != nil {
		return wrapRemote(err)
	}
	return nil
}

// DeleteCellData removes the aspect stored under key for the given cell.
// Deleting a key that has no value is not an error.
func (c *Client) DeleteCellData(ctx context.Context, e2NodeID, cellID, key string) error {
	return c.SetCellData(ctx, e2NodeID, cellID, key, nil)
}

// Close marks the client stopped. Calls after Close fail with
// ErrClientStopped.
func (c *Client) Close() {
	c.stopped.Store(true)
}

// listCells fetches the cells contained by an E2 node.
func (c *Client) listCells(ctx context.Context, e2NodeID string) ([]Cell, error) {
	var resp struct {
		Cells []Cell `json:"cells"`
	}
	path := fmt.Sprintf("/nodes/%s/cells", url.PathEscape(e2NodeID))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Cells, nil
}

// cellEntityID resolves a cell object ID to its topology entity ID.
func (c *Client) cellEntityID(ctx context.Context, e2NodeID, cellID string) (string, error) {
	cells, err := c.listCells(ctx, e2NodeID)
	if err != nil {
		return "", err
	}
	for _, cell := range cells {
		if cell.CellObjectID == cellID {
			return cell.EntityID, nil
		}
	}
	return "", &RuntimeError{Message: fmt.Sprintf("cannot find cell %s in e2 node %s", cellID, e2NodeID)}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if c.stopped.Load() {
		return ErrClientStopped
	}
	if err := c.rest.GetJSON(ctx, path, out); err != nil {
		return wrapRemote(err)
	}
	return nil
}
