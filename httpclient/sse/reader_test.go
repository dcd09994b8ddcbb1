package sse

import (
	"io"
	"strings"
	"testing"
)

type stringBody struct {
	*strings.Reader
}

func (s *stringBody) Close() error { return nil }

func newBody(s string) io.ReadCloser {
	return &stringBody{strings.NewReader(s)}
}

func TestReaderSingleEvent(t *testing.T) {
	r := NewReader(newBody("data: hello\n\n"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "hello" {
		t.Errorf("got data %q, want %q", ev.Data, "hello")
	}
}

func TestReaderTypedEvent(t *testing.T) {
	r := NewReader(newBody("event: added\nid: 7\ndata: {\"id\":\"e2:1\"}\n\n"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Event != "added" {
		t.Errorf("got event %q, want %q", ev.Event, "added")
	}
	if ev.ID != "7" {
		t.Errorf("got id %q, want %q", ev.ID, "7")
	}
}

func TestReaderMultilineData(t *testing.T) {
	r := NewReader(newBody("data: first\ndata: second\n\n"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "first\nsecond" {
		t.Errorf("got data %q, want joined lines", ev.Data)
	}
}

func TestReaderCommentsSkipped(t *testing.T) {
	r := NewReader(newBody(": keepalive\ndata: x\n\n"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "x" {
		t.Errorf("got data %q, want %q", ev.Data, "x")
	}
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(newBody(""))
	defer r.Close()

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderUnterminatedFinalEvent(t *testing.T) {
	r := NewReader(newBody("data: last"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "last" {
		t.Errorf("got data %q, want %q", ev.Data, "last")
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after final event, got %v", err)
	}
}
