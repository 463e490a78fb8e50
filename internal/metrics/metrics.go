// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package metrics exposes Prometheus instrumentation for the reporting
// API and its query executor. All collectors are registered with the
// default registry and served on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Report query metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_query_duration_seconds",
			Help:    "Duration of report query execution in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_id"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_query_errors_total",
			Help: "Total number of report query failures",
		},
		[]string{"query_id", "error_type"}, // "connection", "execution"
	)

	QueryRowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_query_rows_returned",
			Help:    "Number of rows returned per report query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"query_id"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordQuery records one report query execution. errorType is empty on
// success, "connection" or "execution" on failure.
func RecordQuery(queryID string, duration time.Duration, rows int, errorType string) {
	QueryDuration.WithLabelValues(queryID).Observe(duration.Seconds())
	if errorType != "" {
		QueryErrors.WithLabelValues(queryID, errorType).Inc()
		return
	}
	QueryRowsReturned.WithLabelValues(queryID).Observe(float64(rows))
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
