// Package metrics provides the centralized Prometheus metrics registry for
// the logspect client. All metrics are defined in their respective packages
// (client, refcache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the logspect client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - logspect_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - logspect_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - logspect_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Retry Metrics (pkg/client):
//   - logspect_retries_total{error_class} (Counter): Retry attempts by error class
//   - logspect_retry_backoff_seconds{error_class} (Histogram): Backoff duration by error class
//   - logspect_retry_exhausted_total{error_class} (Counter): Requests that exhausted max retries
//
// Reference Cache Metrics (pkg/refcache):
//   - logspect_refcache_hits_total (Counter): Reference cache hits
//   - logspect_refcache_misses_total (Counter): Reference cache misses
//   - logspect_refcache_errors_total{operation} (Counter): Cache operation errors (get, set, delete)
//
// Example Prometheus Queries:
//
//   # Reference Cache Hit Rate
//   sum(rate(logspect_refcache_hits_total[5m])) /
//   (sum(rate(logspect_refcache_hits_total[5m])) + sum(rate(logspect_refcache_misses_total[5m])))
//
//   # Request Error Rate
//   rate(logspect_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(logspect_request_duration_seconds_bucket[5m]))
//
//   # Retry Pressure
//   rate(logspect_retries_total[5m])
