package xapp

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/xappkit/logger"
)

func recordingHook(name string, log *[]string) hook {
	return hook{
		name: name,
		start: func(ctx context.Context, app *App) error {
			*log = append(*log, "start "+name)
			return nil
		},
		stop: func(ctx context.Context, app *App) error {
			*log = append(*log, "stop "+name)
			return nil
		},
	}
}

func TestLifecycleOrdering(t *testing.T) {
	var seq []string
	lc := newLifecycle(logger.NewDefault("test"),
		recordingHook("a", &seq),
		recordingHook("b", &seq),
		recordingHook("c", &seq),
	)
	app := &App{}

	if err := lc.startAll(context.Background(), app); err != nil {
		t.Fatalf("startAll returned error: %v", err)
	}
	if err := lc.stopAll(context.Background(), app); err != nil {
		t.Fatalf("stopAll returned error: %v", err)
	}

	want := []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}
	if len(seq) != len(want) {
		t.Fatalf("sequence = %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", seq, want)
		}
	}
}

func TestLifecycleStartFailureRollsBack(t *testing.T) {
	var seq []string
	boom := errors.New("boom")
	failing := hook{
		name: "b",
		start: func(ctx context.Context, app *App) error {
			return boom
		},
		stop: func(ctx context.Context, app *App) error {
			seq = append(seq, "stop b")
			return nil
		},
	}
	lc := newLifecycle(logger.NewDefault("test"),
		recordingHook("a", &seq),
		failing,
		recordingHook("c", &seq),
	)
	app := &App{}

	err := lc.startAll(context.Background(), app)
	if !errors.Is(err, boom) {
		t.Fatalf("startAll error = %v, want %v", err, boom)
	}

	// Only the hook that started gets stopped; the failing hook and the
	// ones after it never do.
	want := []string{"start a", "stop a"}
	if len(seq) != len(want) || seq[0] != want[0] || seq[1] != want[1] {
		t.Fatalf("sequence = %v, want %v", seq, want)
	}
}

func TestLifecycleStopContinuesPastFailures(t *testing.T) {
	var seq []string
	boom := errors.New("boom")
	failingStop := hook{
		name:  "b",
		start: func(ctx context.Context, app *App) error { return nil },
		stop: func(ctx context.Context, app *App) error {
			return boom
		},
	}
	lc := newLifecycle(logger.NewDefault("test"),
		recordingHook("a", &seq),
		failingStop,
	)
	app := &App{}

	if err := lc.startAll(context.Background(), app); err != nil {
		t.Fatalf("startAll returned error: %v", err)
	}
	err := lc.stopAll(context.Background(), app)
	if !errors.Is(err, boom) {
		t.Fatalf("stopAll error = %v, want %v", err, boom)
	}

	// The failure in b's teardown must not skip a's.
	found := false
	for _, s := range seq {
		if s == "stop a" {
			found = true
		}
	}
	if !found {
		t.Fatalf("sequence = %v, expected stop a to run", seq)
	}
}
