// Package api serves the quiz and analysis endpoints over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/metrics"
	"github.com/abhisek/hairharmony/internal/store"
)

// ClientKeyHeader names the header a front end sends to have its full
// result saved and retrievable later.
const ClientKeyHeader = "X-Client-Key"

// maxBodyBytes caps request bodies; a full submission is well under 8 KiB.
const maxBodyBytes = "64K"

// Options configures optional server dependencies.
type Options struct {
	// Results persists full analyses sent with a client key. Nil disables
	// saving and the results endpoint answers 404.
	Results store.ResultRepo

	Metrics *metrics.Metrics

	// Gatherer backs /metrics. Nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// Server wires the HTTP routes to the analysis service.
type Server struct {
	svc     *analysis.Service
	results store.ResultRepo
	metrics *metrics.Metrics
	echo    *echo.Echo
}

// New creates a Server with all routes registered.
func New(svc *analysis.Service, opts Options) *Server {
	s := &Server{
		svc:     svc,
		results: opts.Results,
		metrics: opts.Metrics,
		echo:    echo.New(),
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Use(RequestLogger(opts.Metrics))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodyBytes))

	e.GET("/healthz", s.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	g := e.Group("/api")
	g.GET("/questions", s.questions)
	g.POST("/analyze-color", s.analyzePreview)
	g.POST("/analyze-color-full", s.analyzeFull)
	g.POST("/analyze-season", s.analyzeSeason)
	g.GET("/results/:key", s.result)
	g.GET("/guides/:season", s.guide)
	g.GET("/checkout", s.checkout)

	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown. A clean shutdown returns nil.
func (s *Server) Start(addr string) error {
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
