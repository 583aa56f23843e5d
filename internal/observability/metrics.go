// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UploadsTotal counts image upload attempts by outcome.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_image_uploads_total",
		Help: "Total number of plant image upload attempts by outcome",
	}, []string{"outcome"})

	// UploadLatency records blob upload latency in seconds.
	UploadLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "verdant_image_upload_latency_seconds",
		Help:    "Blob store upload latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// PlantOperations counts plant lifecycle operations by kind and outcome.
	PlantOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_plant_operations_total",
		Help: "Total plant lifecycle operations by kind and outcome",
	}, []string{"operation", "outcome"})
)

// ObserveUpload records a single upload attempt.
func ObserveUpload(start time.Time, err error) {
	UploadLatency.Observe(time.Since(start).Seconds())
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UploadsTotal.WithLabelValues(outcome).Inc()
}
