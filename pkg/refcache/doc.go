// Package refcache provides a Redis-backed TTL cache for slow-changing
// reference data (teams, environments, severities).
//
// List-view data is never cached: every list screen owns its own result
// set for exactly as long as it is displayed. Reference lists, in
// contrast, back dropdowns on every screen and change rarely, so they are
// cached for a short fixed TTL.
//
// The cache is strictly optional. A nil *Manager disables caching, and an
// unreachable Redis degrades to direct fetches with a warning log; it is
// never a hard dependency.
//
// # Basic Usage
//
//	manager := refcache.NewManager(redisClient, 5*time.Minute)
//
//	key := refcache.Key{Endpoint: "/logs/environments"}
//
//	var envs []api.Environment
//	err := manager.Get(ctx, key, &envs)
//	if errors.Is(err, refcache.ErrCacheMiss) {
//		// fetch from the backend, then manager.Set(ctx, key, envs)
//	}
//
// # Metrics
//
// The cache exports Prometheus metrics:
//
//   - logspect_refcache_hits_total - Cache hits
//   - logspect_refcache_misses_total - Cache misses
//   - logspect_refcache_errors_total{operation} - Cache operation errors
package refcache
