package config

import (
	"os"
	"path/filepath"
	"testing"
)

type xappConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	TopoEndpoint  string `yaml:"topo_endpoint" mapstructure:"topo_endpoint"`
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
name: ts-xapp
environment: production
version: 1.2.0
topo_endpoint: onos-topo:5150
logging:
  level: debug
  format: json
`)

	var cfg xappConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "ts-xapp" {
		t.Errorf("expected name 'ts-xapp', got %q", cfg.Name)
	}
	if cfg.TopoEndpoint != "onos-topo:5150" {
		t.Errorf("expected topo endpoint, got %q", cfg.TopoEndpoint)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level 'debug', got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg xappConfig
	if err := Load("/nonexistent/config.yml", &cfg); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeTempConfig(t, `
name: ts-xapp
topo_endpoint: onos-topo:5150
`)
	t.Setenv("XAPP_TOPO_ENDPOINT", "override:5150")

	var cfg xappConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TopoEndpoint != "override:5150" {
		t.Errorf("expected env override to win, got %q", cfg.TopoEndpoint)
	}
}

func TestServiceConfigDefaults(t *testing.T) {
	cfg := &ServiceConfig{Name: "x"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("expected default environment, got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected debug enabled in development")
	}
	if cfg.Logging.ServiceName != "x" {
		t.Errorf("expected logging service name propagated, got %q", cfg.Logging.ServiceName)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	cfg := &ServiceConfig{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing name")
	}

	cfg = &ServiceConfig{Name: "x", Environment: "qa"}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid environment")
	}

	cfg = &ServiceConfig{Name: "x"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
