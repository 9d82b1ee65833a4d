package metrics

/*
typofuzz — domain typosquatting generator and registration status checker
Copyright (C) 2025  typofuzz contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry           = prometheus.NewRegistry()
	defaultRegisterer  = promauto.With(registry)
	metricsInitialized sync.Once
	metricsEnabled     bool
	metricsServer      *http.Server
)

// Metrics contains all the Prometheus metrics for the application
type Metrics struct {
	// Candidate generation metrics
	CandidatesGenerated *prometheus.CounterVec
	CandidatesFiltered  *prometheus.CounterVec

	// Status lookup metrics
	LookupDuration *prometheus.HistogramVec
	LookupsTotal   *prometheus.CounterVec
	TierFailures   *prometheus.CounterVec
	OutcomesTotal  *prometheus.CounterVec

	// Queue metrics
	QueueSize            *prometheus.GaugeVec
	QueueCapacity        *prometheus.GaugeVec
	QueuePressure        *prometheus.GaugeVec
	QueueBackpressureHit *prometheus.CounterVec

	// Worker metrics
	WorkerBusy      *prometheus.GaugeVec
	WorkerProcessed *prometheus.CounterVec
	WorkerErrors    *prometheus.CounterVec
	WorkerPanics    *prometheus.CounterVec

	// Scheduler metrics
	WorkSubmitted  *prometheus.CounterVec
	WorkCompleted  *prometheus.CounterVec
	WorkFailed     *prometheus.CounterVec
	RateLimitDelay *prometheus.HistogramVec

	// Batch pipeline metrics
	BatchesProcessed *prometheus.CounterVec
	MatchesFound     *prometheus.CounterVec
}

// Global instance of metrics
var globalMetrics *Metrics
var metricsOnce sync.Once

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics()
	})
	return globalMetrics
}

// EnableMetrics enables metrics collection
func EnableMetrics() {
	metricsEnabled = true
}

// IsMetricsEnabled returns whether metrics collection is enabled
func IsMetricsEnabled() bool {
	return metricsEnabled
}

// newMetrics creates and registers all metrics
func newMetrics() *Metrics {
	buckets := []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}

	m := &Metrics{
		// Candidate generation metrics
		CandidatesGenerated: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_candidates_generated_total",
				Help: "Total number of candidate domains generated",
			},
			[]string{"transform"},
		),
		CandidatesFiltered: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_candidates_filtered_total",
				Help: "Total number of candidates dropped before checking",
			},
			[]string{"reason"},
		),

		// Status lookup metrics
		LookupDuration: defaultRegisterer.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "typofuzz_lookup_duration_seconds",
				Help:    "Time spent on registration status lookups",
				Buckets: buckets,
			},
			[]string{"tier"},
		),
		LookupsTotal: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_lookups_total",
				Help: "Total number of status lookups per tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		TierFailures: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_tier_failures_total",
				Help: "Total number of tier failures that caused a fallthrough",
			},
			[]string{"tier"},
		),
		OutcomesTotal: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_outcomes_total",
				Help: "Final registration outcomes per domain resolution",
			},
			[]string{"outcome"},
		),

		// Queue metrics
		QueueSize: defaultRegisterer.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "typofuzz_queue_size",
				Help: "Current size of work queues",
			},
			[]string{"worker_id"},
		),
		QueueCapacity: defaultRegisterer.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "typofuzz_queue_capacity",
				Help: "Maximum capacity of work queues",
			},
			[]string{"worker_id"},
		),
		QueuePressure: defaultRegisterer.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "typofuzz_queue_pressure",
				Help: "Queue pressure as a ratio of current size to capacity (0-1)",
			},
			[]string{"worker_id"},
		),
		QueueBackpressureHit: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_queue_backpressure_hits_total",
				Help: "Number of times backpressure was applied due to full queue",
			},
			[]string{"worker_id"},
		),

		// Worker metrics
		WorkerBusy: defaultRegisterer.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "typofuzz_worker_busy",
				Help: "Whether a worker is currently busy (1) or idle (0)",
			},
			[]string{"worker_id"},
		),
		WorkerProcessed: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_worker_processed_total",
				Help: "Total number of items processed by a worker",
			},
			[]string{"worker_id"},
		),
		WorkerErrors: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_worker_errors_total",
				Help: "Total number of errors encountered by a worker",
			},
			[]string{"worker_id", "error_type"},
		),
		WorkerPanics: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_worker_panics_total",
				Help: "Total number of panics recovered by a worker",
			},
			[]string{"worker_id"},
		),

		// Scheduler metrics
		WorkSubmitted: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_scheduler_work_submitted_total",
				Help: "Total number of work items submitted to the scheduler",
			},
			[]string{"operation"},
		),
		WorkCompleted: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_scheduler_work_completed_total",
				Help: "Total number of work items completed by the scheduler",
			},
			[]string{"operation"},
		),
		WorkFailed: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_scheduler_work_failed_total",
				Help: "Total number of work items that failed processing",
			},
			[]string{"operation", "error_type"},
		),
		RateLimitDelay: defaultRegisterer.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "typofuzz_scheduler_rate_limit_delay_seconds",
				Help:    "Time spent waiting due to rate limiting",
				Buckets: buckets,
			},
			[]string{"operation"},
		),

		// Batch pipeline metrics
		BatchesProcessed: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_batches_processed_total",
				Help: "Total number of candidate batches resolved",
			},
			[]string{"filter"},
		),
		MatchesFound: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typofuzz_matches_found_total",
				Help: "Total number of candidates that passed the batch filter",
			},
			[]string{"filter"},
		),
	}

	return m
}

// RecordTierOutcome counts a definitive outcome produced by a tier.
func RecordTierOutcome(tier, outcome string) {
	if !metricsEnabled {
		return
	}
	GetMetrics().LookupsTotal.WithLabelValues(tier, outcome).Inc()
}

// RecordTierFailure counts a tier failure that caused a fallthrough.
func RecordTierFailure(tier string) {
	if !metricsEnabled {
		return
	}
	GetMetrics().TierFailures.WithLabelValues(tier).Inc()
}

// RecordOutcome counts the final outcome of a full resolution.
func RecordOutcome(outcome string) {
	if !metricsEnabled {
		return
	}
	GetMetrics().OutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordCandidates counts generated candidates for a transform.
func RecordCandidates(transform string, n int) {
	if !metricsEnabled {
		return
	}
	GetMetrics().CandidatesGenerated.WithLabelValues(transform).Add(float64(n))
}

// StartMetricsServer starts an HTTP server to expose Prometheus metrics
func StartMetricsServer(addr string) error {
	if !metricsEnabled {
		return nil
	}

	// Only start once
	var startErr error
	metricsInitialized.Do(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		metricsServer = &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		go func() {
			log.Printf("Starting metrics server on %s", addr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("Metrics server error: %v", err)
			}
		}()
	})

	return startErr
}

// ShutdownMetricsServer gracefully shuts down the metrics server
func ShutdownMetricsServer(ctx context.Context) error {
	if metricsServer != nil {
		log.Println("Shutting down metrics server...")
		return metricsServer.Shutdown(ctx)
	}
	return nil
}

// MeasureDuration is a helper to measure the duration of a function
func MeasureDuration(histogram *prometheus.HistogramVec, labels prometheus.Labels) func() {
	if !metricsEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		duration := time.Since(start)
		histogram.With(labels).Observe(duration.Seconds())
	}
}

// UpdateQueueMetrics updates queue metrics for a worker
func (m *Metrics) UpdateQueueMetrics(workerID int, queueSize, queueCapacity int) {
	if !metricsEnabled {
		return
	}

	id := strconv.Itoa(workerID)
	m.QueueSize.WithLabelValues(id).Set(float64(queueSize))
	m.QueueCapacity.WithLabelValues(id).Set(float64(queueCapacity))

	if queueCapacity > 0 {
		pressure := float64(queueSize) / float64(queueCapacity)
		m.QueuePressure.WithLabelValues(id).Set(pressure)
	}
}
