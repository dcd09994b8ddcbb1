// Package e2 wraps the RIC's E2 subscription northbound API. Like sdl, it
// is plain I/O glue with no coupling to the xapp bootstrap layer.
package e2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/kbukum/xappkit/httpclient"
	"github.com/kbukum/xappkit/validation"
)

// Config holds E2 client configuration.
type Config struct {
	// Endpoint is the E2 termination base URL.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required"`
	// Timeout applies to non-streaming requests.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// TLS configures transport security; nil means plaintext.
	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("e2: endpoint is required")
	}
	if c.TLS != nil {
		return c.TLS.Validate()
	}
	return nil
}

// Client talks to the E2 termination service.
type Client struct {
	rest    *httpclient.Client
	stopped atomic.Bool
}

// New creates an E2 client from the given configuration.
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

// SubscriptionSpec describes what to subscribe to on an E2 node.
type SubscriptionSpec struct {
	ServiceModelName    string          `json:"service_model_name" validate:"required"`
	ServiceModelVersion string          `json:"service_model_version" validate:"required"`
	Trigger             json.RawMessage `json:"trigger,omitempty"`
	ReportPeriod        time.Duration   `json:"report_period,omitempty"`
}

// Indication is a single report delivered on a subscription.
type Indication struct {
	Header  []byte `json:"header"`
	Payload []byte `json:"payload"`
}

// Subscribe creates a subscription on the given E2 node and returns its
// handle.
func (c *Client) Subscribe(ctx context.Context, e2NodeID string, spec SubscriptionSpec) (*Subscription, error) {
	if c.stopped.Load() {
		return nil, ErrClientStopped
	}
	if err := validation.ValidateStruct(spec); err != nil {
		return nil, err
	}

	var resp struct {
		ID string `json:"id"`
	}
	path := fmt.Sprintf("/nodes/%s/subscriptions", url.PathEscape(e2NodeID))
	if err := c.rest.PostJSON(ctx, path, spec, &resp); err != nil {
		return nil, &RuntimeError{Message: "creating subscription", Err: err}
	}
	return &Subscription{ID: resp.ID, nodeID: e2NodeID, client: c}, nil
}

// Close marks the client stopped. Calls after Close fail with
// ErrClientStopped.
func (c *Client) Close() {
	c.stopped.Store(true)
}
