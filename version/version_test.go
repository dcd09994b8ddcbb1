package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("expected non-empty version")
	}
}

func TestGetShortVersion(t *testing.T) {
	short := GetShortVersion()
	if !strings.HasPrefix(short, Version) {
		t.Errorf("short version %q should start with %q", short, Version)
	}
}
