package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).Level(zerolog.InfoLevel).With().Timestamp().Caller().Logger()
	if level != "" {
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			zl = zl.Level(lvl)
		}
	}
	return &Logger{logger: zl, service: "test"}, buf
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format 'console', got %q", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
	if !cfg.Caller {
		t.Error("expected caller reporting enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Level: "verbose", Format: "json", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = &Config{Level: "debug", Format: "xml", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}

	cfg = &Config{Level: "debug", Format: "json", Output: "stdout"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRecordShape(t *testing.T) {
	log, buf := newBufferLogger("info")
	log.Info("hello", Fields("endpoint", "topo:5150"))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	if record["level"] != "info" {
		t.Errorf("expected level 'info', got %v", record["level"])
	}
	if record["message"] != "hello" {
		t.Errorf("expected message 'hello', got %v", record["message"])
	}
	if record["endpoint"] != "topo:5150" {
		t.Errorf("expected field endpoint, got %v", record["endpoint"])
	}
	if _, ok := record["time"]; !ok {
		t.Error("expected timestamp field")
	}
	if _, ok := record["caller"]; !ok {
		t.Error("expected caller (source location) field")
	}
	if strings.Count(strings.TrimSpace(buf.String()), "\n") != 0 {
		t.Error("expected a single-line record")
	}
}

func TestLevelFiltering(t *testing.T) {
	log, buf := newBufferLogger("warn")
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info record below warn level to be dropped, got %q", buf.String())
	}
	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("expected warn record to be written")
	}
}

func TestWithComponent(t *testing.T) {
	log, buf := newBufferLogger("info")
	log.WithComponent("listener").Info("waiting")

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	if record[FieldComponent] != "listener" {
		t.Errorf("expected component 'listener', got %v", record[FieldComponent])
	}
}

func TestFieldsBuilder(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected map: %v", m)
	}
	// Odd trailing key is ignored.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key ignored, got %v", m)
	}
}
