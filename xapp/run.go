package xapp

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/xappkit/logger"
	"github.com/kbukum/xappkit/server"
	"github.com/kbukum/xappkit/version"
)

// Run bootstraps and runs an xApp: it starts the supervised entrypoint and
// the shutdown listener, serves the pre-registered route table plus any
// user-supplied routes, and blocks until the process receives SIGINT or
// SIGTERM. configPath is stored verbatim and served at /config.
//
// Run returns once teardown is complete: a nil error on a clean shutdown,
// the entrypoint's error if it failed, or the failure that prevented
// startup.
func Run(main func(ctx context.Context) error, configPath string, opts ...Option) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunContext(ctx, main, configPath, opts...)
}

// RunContext is Run bound to the caller's context instead of process
// signals. The xApp shuts down when ctx is cancelled.
func RunContext(ctx context.Context, main func(ctx context.Context) error, configPath string, opts ...Option) error {
	if main == nil {
		return &InvalidEntrypointError{Reason: "entrypoint must be a non-nil func(context.Context) error"}
	}

	cfg := newRunConfig(opts)
	log := cfg.log.WithComponent("xapp")

	app := &App{
		Main:       main,
		ConfigPath: configPath,
	}

	merged, err := mergeRoutes(defaultRoutes(app, cfg), cfg.routes)
	if err != nil {
		// The entrypoint never runs when registration fails; drop the
		// reference so nothing can start it later.
		app.Main = nil
		log.Error("Route registration failed", logger.ErrorFields("merge-routes", err))
		return err
	}

	var srvOpts []server.Option
	if cfg.engine != nil {
		srvOpts = append(srvOpts, server.WithEngine(cfg.engine))
	}
	if cfg.tracing != nil && cfg.tracing.Enabled {
		cfg.serverCfg.Tracing = true
	}
	srv := server.New(cfg.serverCfg, cfg.log, srvOpts...)

	// The API document describes the full served table, itself included.
	docRoute := server.Route{Method: http.MethodGet, Path: "/swagger.json"}
	docRoute.Handler = server.OpenAPIHandler(cfg.name, version.GetShortVersion(), append(merged, docRoute))
	merged = append(merged, docRoute)
	srv.RegisterRoutes(merged)

	hooks := make([]hook, 0, 3)
	if cfg.tracing != nil {
		hooks = append(hooks, tracingHook(*cfg.tracing))
	}
	hooks = append(hooks,
		mainTaskHook(log),
		shutdownListenerHook(log, cfg.gracePeriod, cfg.terminate),
	)
	lc := newLifecycle(log, hooks...)

	if err := lc.startAll(ctx, app); err != nil {
		return err
	}

	if err := srv.Start(ctx); err != nil {
		stopErr := lc.stopAll(context.Background(), app)
		return errors.Join(err, stopErr)
	}

	log.Info("xApp running", logger.Fields(
		logger.FieldService, cfg.name,
		"addr", srv.Addr(),
	))

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-srv.Err():
		log.Error("Server failed", logger.ErrorFields("serve", serveErr))
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.stopTimeout)
	defer cancel()

	srvStopErr := srv.Stop(stopCtx)
	hookErr := lc.stopAll(stopCtx, app)

	if hookErr != nil {
		return hookErr
	}
	if serveErr != nil {
		return serveErr
	}
	return srvStopErr
}
