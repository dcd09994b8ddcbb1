package sdl

import (
	"fmt"
	"time"

	"github.com/kbukum/xappkit/httpclient"
)

// Config holds topology client configuration.
type Config struct {
	// Endpoint is the topology service base URL.
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
		return fmt.Errorf("sdl: endpoint is required")
	}
	if c.TLS != nil {
		return c.TLS.Validate()
	}
	return nil
}
