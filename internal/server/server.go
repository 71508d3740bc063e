// Package server hosts the generated site and the contact endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options struct {
	Addr           string
	OutputDir      string
	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none, so the client
	// IP is the socket address.
	TrustedProxies []string
	Contact        *ContactHandler // nil disables /api/contact
	Logger         *zap.Logger
}

type Server struct {
	engine *gin.Engine
	server *http.Server
	log    *zap.Logger
}

func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	engine.Use(gin.Recovery(), requestLogger(opts.Logger), requestMetrics())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	if len(opts.AllowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowedOrigins,
			AllowMethods: []string{http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	if opts.Contact != nil {
		api.POST("/contact", opts.Contact.Submit)
		api.OPTIONS("/contact", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	static := &staticSite{dir: opts.OutputDir, log: opts.Logger}
	engine.NoRoute(static.serve)

	return &Server{
		engine: engine,
		server: &http.Server{
			Addr:              opts.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: opts.Logger,
	}, nil
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.log.Info("Server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.log.Info("Server stopped")
	return nil
}
