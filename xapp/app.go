package xapp

import "context"

// App is the process-wide application container. Exactly one exists per
// Run call; the supervised activities share it by reference.
type App struct {
	// Main is the user entrypoint. It is handed to the main task runner
	// exactly once and runs for the lifetime of the server.
	Main func(ctx context.Context) error

	// ConfigPath is the location of the service's configuration file,
	// stored verbatim. Parsing belongs to package config.
	ConfigPath string

	// Shutdown is the shutdown notification. It is created during
	// listener startup and never recreated; nil until then.
	Shutdown *ShutdownSignal

	// mainTask is the supervised handle for Main, owned by the
	// main task runner between its startup and teardown.
	mainTask *Task

	// listenerTask is the supervised handle for the shutdown listener.
	listenerTask *Task
}

// RequestShutdown sets the shutdown signal, initiating the grace period
// and process termination. Safe to call repeatedly; only the first call
// has an effect. It is a no-op before the listener has started.
func (a *App) RequestShutdown() {
	if a.Shutdown != nil {
		a.Shutdown.Set()
	}
}
