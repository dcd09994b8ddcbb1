package xapp

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/xappkit/logger"
	"github.com/kbukum/xappkit/server"
	"github.com/kbukum/xappkit/server/endpoint"
	"github.com/kbukum/xappkit/telemetry"
)

// DefaultGracePeriod is how long the shutdown listener waits between the
// shutdown notification and process termination, giving in-flight
// connections time to drain.
const DefaultGracePeriod = 1 * time.Second

// defaultStopTimeout bounds graceful teardown of the server and the
// supervised tasks.
const defaultStopTimeout = 15 * time.Second

// runConfig collects everything Run needs beyond the entrypoint and the
// configuration path.
type runConfig struct {
	name        string
	log         *logger.Logger
	routes      []server.Route
	serverCfg   server.Config
	engine      *gin.Engine
	gracePeriod time.Duration
	stopTimeout time.Duration
	terminate   func()
	health      endpoint.HealthChecker
	tracing     *telemetry.TracerConfig
}

func newRunConfig(opts []Option) *runConfig {
	cfg := &runConfig{
		name:        "xapp",
		gracePeriod: DefaultGracePeriod,
		stopTimeout: defaultStopTimeout,
		terminate:   terminateProcess,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.NewDefault(cfg.name)
	}
	return cfg
}

// Option customizes Run.
type Option func(*runConfig)

// WithName sets the service name used in log records and probe responses.
func WithName(name string) Option {
	return func(c *runConfig) { c.name = name }
}

// WithLogger supplies the logger. When absent a default logger named
// after the service is created.
func WithLogger(log *logger.Logger) Option {
	return func(c *runConfig) { c.log = log }
}

// WithRoutes adds user-supplied routes to the served table. Routes must
// not collide with the pre-registered table or with each other; Run fails
// with a DuplicateRouteError otherwise.
func WithRoutes(routes ...server.Route) Option {
	return func(c *runConfig) { c.routes = append(c.routes, routes...) }
}

// WithServerConfig sets the HTTP server configuration. Zero fields get
// defaults applied.
func WithServerConfig(cfg server.Config) Option {
	return func(c *runConfig) { c.serverCfg = cfg }
}

// WithEngine supplies a pre-built Gin engine, replacing the default
// middleware stack. The pre-registered routes are still installed on it.
func WithEngine(engine *gin.Engine) Option {
	return func(c *runConfig) { c.engine = engine }
}

// WithGracePeriod overrides the delay between the shutdown notification
// and process termination.
func WithGracePeriod(d time.Duration) Option {
	return func(c *runConfig) { c.gracePeriod = d }
}

// WithTerminator overrides how the shutdown listener terminates the
// process. The default sends SIGTERM to the current process.
func WithTerminator(terminate func()) Option {
	return func(c *runConfig) { c.terminate = terminate }
}

// WithHealthChecker supplies the checks behind /health and /ready. The
// default reports the supervised entrypoint's state.
func WithHealthChecker(checker endpoint.HealthChecker) Option {
	return func(c *runConfig) { c.health = checker }
}

// WithTracing enables OpenTelemetry tracing. The provider is initialized
// before the other activities start and shut down after they stop, and
// the server gets the tracing middleware.
func WithTracing(cfg telemetry.TracerConfig) Option {
	return func(c *runConfig) { c.tracing = &cfg }
}
