package xapp

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/kbukum/xappkit/logger"
)

// mainTaskHook supervises the user entrypoint. Startup schedules it as an
// independent background task and returns immediately; the entrypoint is
// expected to run indefinitely. Teardown requests a stop and waits for
// the task, surfacing any non-cancellation failure.
func mainTaskHook(log *logger.Logger) hook {
	return hook{
		name: "main-task",
		start: func(ctx context.Context, app *App) error {
			app.mainTask = startTask(context.Background(), "main-task", app.Main)
			log.Info("Main task started", map[string]interface{}{
				"task_id": app.mainTask.ID(),
			})
			return nil
		},
		stop: func(ctx context.Context, app *App) error {
			app.mainTask.RequestStop()
			return app.mainTask.Join(ctx)
		},
	}
}

// shutdownListenerHook supervises the shutdown listener. Startup creates
// the shutdown notification in the container and schedules a task that
// waits for it; once notified, the listener logs a warning, waits the
// grace period so in-flight connections can drain, then terminates the
// process. Teardown on a normal exit cancels the still-waiting listener.
func shutdownListenerHook(log *logger.Logger, gracePeriod time.Duration, terminate func()) hook {
	return hook{
		name: "shutdown-listener",
		start: func(ctx context.Context, app *App) error {
			app.Shutdown = NewShutdownSignal()
			app.listenerTask = startTask(context.Background(), "shutdown-listener",
				func(ctx context.Context) error {
					select {
					case <-app.Shutdown.Done():
					case <-ctx.Done():
						return ctx.Err()
					}

					log.Warn("Shutting down!")

					select {
					case <-time.After(gracePeriod):
					case <-ctx.Done():
						return ctx.Err()
					}

					terminate()
					return nil
				})
			return nil
		},
		stop: func(ctx context.Context, app *App) error {
			app.listenerTask.RequestStop()
			return app.listenerTask.Join(ctx)
		},
	}
}

// terminateProcess sends SIGTERM to the current process, converging the
// programmatic shutdown path onto the same signal-driven drain sequence
// as an external termination.
func terminateProcess() {
	_ = syscall.Kill(os.Getpid(), syscall.SIGTERM)
}
