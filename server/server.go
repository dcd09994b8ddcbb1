package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kbukum/xappkit/logger"
	"github.com/kbukum/xappkit/server/middleware"
)

// Route is a single HTTP endpoint definition. Identity for conflict
// detection is the (Method, Path) pair.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Key returns the route identity as "METHOD /path".
func (r Route) Key() string {
	return r.Method + " " + r.Path
}

// Server is the HTTP server loop backed by Gin.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     Config
	log        *logger.Logger
	serveErr   chan error
	addr       string
}

// Option configures the Server during creation.
type Option func(*options)

type options struct {
	engine *gin.Engine
}

// WithEngine supplies a pre-built Gin engine. When absent one is created
// with the standard middleware stack, including error translation.
func WithEngine(engine *gin.Engine) Option {
	return func(o *options) { o.engine = engine }
}

// New creates a new Server.
func New(cfg Config, log *logger.Logger, opts ...Option) *Server {
	cfg.ApplyDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := o.engine
	if engine == nil {
		engine = gin.New()
		engine.Use(middleware.Recovery())
		engine.Use(middleware.RequestID())
		engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))
		engine.Use(middleware.ErrorTranslation())
		engine.Use(middleware.RequestLogger())
		if cfg.Tracing {
			engine.Use(otelgin.Middleware("xapp-server"))
		}
	}

	// h2c keeps HTTP/2 cleartext clients working on the same port.
	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	handler := h2c.NewHandler(engine, h2s)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		engine:     engine,
		config:     cfg,
		log:        log.WithComponent("server"),
		serveErr:   make(chan error, 1),
	}
}

// Engine returns the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// RegisterRoutes installs the given routes on the engine.
func (s *Server) RegisterRoutes(routes []Route) {
	for _, r := range routes {
		s.engine.Handle(r.Method, r.Path, r.Handler)
		s.log.Debug("Route registered", map[string]interface{}{
			logger.FieldRoute: r.Key(),
		})
	}
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a
// goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	s.addr = listener.Addr().String()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.serveErr <- err
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{
		"addr": s.addr,
	})
	return nil
}

// Err delivers a fatal serve error, if one occurs. Graceful shutdown does
// not produce an error here.
func (s *Server) Err() <-chan error {
	return s.serveErr
}

// Addr returns the bound listen address once Start has succeeded, or the
// configured address before that.
func (s *Server) Addr() string {
	if s.addr != "" {
		return s.addr
	}
	return s.httpServer.Addr
}

// Stop gracefully shuts down the server, draining in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("HTTP server shut down")
	return nil
}
