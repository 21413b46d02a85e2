package refcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks reference cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logspect_refcache_hits_total",
			Help: "Total number of reference cache hits",
		},
	)

	// CacheMisses tracks reference cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logspect_refcache_misses_total",
			Help: "Total number of reference cache misses",
		},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logspect_refcache_errors_total",
			Help: "Total number of reference cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
