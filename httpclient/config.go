package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"
)

// Config holds HTTP client configuration.
type Config struct {
	// BaseURL is the root of the remote API, e.g. "https://onos-topo:5150".
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout applies to non-streaming requests.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// TLS configures transport security; nil means plaintext.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("httpclient: base_url is required")
	}
	if c.TLS != nil {
		return c.TLS.Validate()
	}
	return nil
}

// TLSConfig holds TLS settings for the client transport.
type TLSConfig struct {
	// SkipVerify disables server certificate hostname verification.
	SkipVerify bool `yaml:"skip_verify" mapstructure:"skip_verify"`
	// CAFile is the path to the CA certificate for verifying the server.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`
	// CertFile is the path to the client certificate (for mTLS).
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`
	// KeyFile is the path to the client key (for mTLS).
	KeyFile string `yaml:"key_file" mapstructure:"key_file"`
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if (c.CertFile != "") != (c.KeyFile != "") {
		return fmt.Errorf("httpclient: cert_file and key_file must be provided together")
	}
	return nil
}

// Build creates a *tls.Config, or nil when nothing is configured.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || (!c.SkipVerify && c.CAFile == "" && c.CertFile == "") {
		return nil, nil
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipVerify,
		MinVersion:         tls.VersionTLS12,
	}

	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("httpclient: reading CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("httpclient: no certificates found in %s", c.CAFile)
		}
		cfg.RootCAs = pool
	}

	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("httpclient: loading client key pair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}
