// Package http provides the HTTP server and route wiring for the cards API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardsHTTP "github.com/allisson/cards/internal/cards/http"
)

// ServerOption configures optional server behavior.
type ServerOption func(*serverOptions)

type serverOptions struct {
	corsEnabled       bool
	corsAllowOrigins  string
	metricsMiddleware gin.HandlerFunc
}

// WithCORS enables CORS with a comma-separated list of allowed origins.
func WithCORS(allowOrigins string) ServerOption {
	return func(o *serverOptions) {
		o.corsEnabled = true
		o.corsAllowOrigins = allowOrigins
	}
}

// WithMetricsMiddleware installs an HTTP metrics middleware on the router.
func WithMetricsMiddleware(middleware gin.HandlerFunc) ServerOption {
	return func(o *serverOptions) {
		o.metricsMiddleware = middleware
	}
}

// Server represents the cards API HTTP server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server with all routes and middlewares wired.
func NewServer(
	cardHandler *cardsHTTP.CardHandler,
	host string,
	port int,
	logger *slog.Logger,
	opts ...ServerOption,
) *Server {
	options := serverOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(options.corsEnabled, options.corsAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if options.metricsMiddleware != nil {
		router.Use(options.metricsMiddleware)
	}

	server := &Server{
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	router.GET("/health", server.healthHandler)
	router.GET("/ready", server.readinessHandler)

	api := router.Group("/api")
	{
		if cardHandler != nil {
			api.GET("/validate", cardHandler.ValidateHandler)
			api.GET("/generate", cardHandler.GenerateHandler)
		}
	}

	return server
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server is accepting traffic.
// It flips to not_ready once a graceful shutdown has started so load
// balancers can drain connections.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	return s.server.Shutdown(ctx)
}
