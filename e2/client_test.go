package e2

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestSubscribe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nodes/e2:1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var spec SubscriptionSpec
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			t.Errorf("decoding spec: %v", err)
		}
		if spec.ServiceModelName != "oran-e2sm-kpm" {
			t.Errorf("unexpected service model %q", spec.ServiceModelName)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "sub-1"})
	})
	client := newTestClient(t, mux)

	sub, err := client.Subscribe(context.Background(), "e2:1", SubscriptionSpec{
		ServiceModelName:    "oran-e2sm-kpm",
		ServiceModelVersion: "v2",
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if sub.ID != "sub-1" {
		t.Errorf("expected subscription id 'sub-1', got %q", sub.ID)
	}
}

func TestSubscriptionStream(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nodes/e2:1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "sub-1"})
	})
	mux.HandleFunc("/nodes/e2:1/subscriptions/sub-1/indications", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"header\":\"aGRy\",\"payload\":\"cGF5\"}\n\n"))
	})
	client := newTestClient(t, mux)

	sub, err := client.Subscribe(context.Background(), "e2:1", SubscriptionSpec{ServiceModelName: "kpm", ServiceModelVersion: "v2"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	ch := make(chan Indication, 2)
	if err := sub.Stream(context.Background(), ch); err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	var inds []Indication
	for ind := range ch {
		inds = append(inds, ind)
	}
	if len(inds) != 1 {
		t.Fatalf("expected 1 indication, got %d", len(inds))
	}
	if string(inds[0].Header) != "hdr" || string(inds[0].Payload) != "pay" {
		t.Errorf("unexpected indication: %+v", inds[0])
	}
}

func TestSubscriptionClose(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("/nodes/e2:1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "sub-1"})
	})
	mux.HandleFunc("/nodes/e2:1/subscriptions/sub-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, mux)

	sub, err := client.Subscribe(context.Background(), "e2:1", SubscriptionSpec{ServiceModelName: "kpm", ServiceModelVersion: "v2"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if err := sub.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !deleted {
		t.Error("expected DELETE request for subscription")
	}
}

func TestSubscribeRejectsIncompleteSpec(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	_, err := client.Subscribe(context.Background(), "e2:1", SubscriptionSpec{ServiceModelName: "kpm"})
	if err == nil {
		t.Fatal("expected validation error for missing service model version")
	}
}

func TestStoppedClient(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())
	client.Close()

	if _, err := client.Subscribe(context.Background(), "e2:1", SubscriptionSpec{}); !errors.Is(err, ErrClientStopped) {
		t.Errorf("expected ErrClientStopped, got %v", err)
	}
}
