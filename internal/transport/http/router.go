// Package http is the research API transport: a chi router over the
// registry and the seasonal analysis engine.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"nordquant/internal/infrastructure"
	"nordquant/internal/registry"
	"nordquant/internal/seasonal"
)

// RouterOptions carries the router dependencies.
type RouterOptions struct {
	Registry  *registry.Registry
	Engine    *seasonal.Engine
	Logger    *slog.Logger
	Providers *infrastructure.OTelProviders
	Version   string
}

// NewRouter assembles the full HTTP surface: the research API under
// /api, the health endpoint, and prometheus metrics.
func NewRouter(opts RouterOptions) (chi.Router, error) {
	if opts.Logger == nil {
		opts.Logger = infrastructure.GetLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if opts.Providers != nil && opts.Providers.Meter != nil {
		metrics, err := Metrics(opts.Providers.Meter)
		if err != nil {
			return nil, fmt.Errorf("create metrics middleware: %w", err)
		}
		r.Use(metrics)
	}

	research := NewResearchHandler(opts.Registry, opts.Engine, opts.Logger)
	health := NewHealthHandler(opts.Registry, opts.Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", research.Routes())
		r.Get("/health", health.Health)
	})

	if opts.Providers != nil && opts.Providers.PrometheusHTTP != nil {
		r.Handle("/metrics", opts.Providers.PrometheusHTTP)
	}

	return r, nil
}

// NewServer wraps the router in an http.Server with sane timeouts.
func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout, idleTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}
