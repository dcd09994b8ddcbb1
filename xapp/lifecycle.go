package xapp

import (
	"context"
	"errors"

	"github.com/kbukum/xappkit/logger"
)

// hook is one supervised activity's startup/teardown pair, scoped around
// the server loop's run span.
type hook struct {
	name  string
	start func(ctx context.Context, app *App) error
	stop  func(ctx context.Context, app *App) error
}

// lifecycle orchestrates hooks: startup in registration order before the
// server accepts traffic, teardown in reverse order after it stops, each
// teardown fully drained before the next begins.
type lifecycle struct {
	hooks   []hook
	started int
	log     *logger.Logger
}

func newLifecycle(log *logger.Logger, hooks ...hook) *lifecycle {
	return &lifecycle{hooks: hooks, log: log}
}

// startAll runs every hook's startup step in registration order. On
// failure the already-started hooks are torn down in reverse order before
// the error is returned.
func (l *lifecycle) startAll(ctx context.Context, app *App) error {
	for _, h := range l.hooks {
		l.log.Debug("Starting activity", map[string]interface{}{logger.FieldTask: h.name})
		if err := h.start(ctx, app); err != nil {
			l.log.Error("Activity start failed", logger.ErrorFields(h.name, err))
			if stopErr := l.stopAll(ctx, app); stopErr != nil {
				return errors.Join(err, stopErr)
			}
			return err
		}
		l.started++
	}
	return nil
}

// stopAll tears down started hooks in reverse registration order. Every
// hook is stopped even when an earlier teardown fails; the collected
// errors are returned joined.
func (l *lifecycle) stopAll(ctx context.Context, app *App) error {
	var errs []error
	for i := l.started - 1; i >= 0; i-- {
		h := l.hooks[i]
		l.log.Debug("Stopping activity", map[string]interface{}{logger.FieldTask: h.name})
		if err := h.stop(ctx, app); err != nil {
			l.log.Error("Activity stop failed", logger.ErrorFields(h.name, err))
			errs = append(errs, err)
		}
	}
	l.started = 0
	return errors.Join(errs...)
}
