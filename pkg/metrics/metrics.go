package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentapi", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentapi", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	UploadsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentapi", Name: "uploads_stored_total", Help: "Number of files written to the upload sink, by form field."},
		[]string{"field"},
	)
	UploadsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "contentapi", Name: "uploads_deleted_total", Help: "Number of files removed from the upload sink by cleanup."},
	)
	CleanupFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "contentapi", Name: "uploads_cleanup_failures_total", Help: "Number of best-effort file deletions that failed; such files are orphaned on disk."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(UploadsStored)
	reg.MustRegister(UploadsDeleted)
	reg.MustRegister(CleanupFailures)
}
