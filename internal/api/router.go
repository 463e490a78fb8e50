// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rgaleano/expediter/internal/config"
	"github.com/rgaleano/expediter/internal/logging"
	"github.com/rgaleano/expediter/internal/middleware"
)

// NewRouter assembles the chi router: standard middleware on everything,
// rate limiting and Prometheus instrumentation on the /api group, and the
// metrics and swagger endpoints outside the group so scrapes and doc reads
// are never rate limited.
func NewRouter(h *Handler, cfg *config.APIConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimiter(cfg))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", h.Health)
		r.Get("/queries", h.ListQueries)
		r.Get("/query/{id}", h.RunQuery)
		r.Post("/custom-query", h.CustomQuery)
		r.Get("/dashboard/summary", h.DashboardSummary)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))

	return r
}

// rateLimiter returns the httprate middleware, or a no-op when disabled.
func rateLimiter(cfg *config.APIConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitDisabled {
		logging.Warn().Msg("API rate limiting is disabled")
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}
