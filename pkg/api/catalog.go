package api

import (
	"context"
	"errors"

	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/logging"
	"github.com/logspect/logspect-client/pkg/refcache"
	"github.com/rs/zerolog"
)

// CatalogService fetches reference lists (teams, environments) that back
// dropdowns on every screen. Results go through the optional refcache;
// cache trouble degrades to a direct fetch, never a hard failure.
type CatalogService struct {
	http   *client.Client
	cache  *refcache.Manager
	logger zerolog.Logger
}

// NewCatalogService creates the catalog. cache may be nil.
func NewCatalogService(httpClient *client.Client, cache *refcache.Manager) *CatalogService {
	return &CatalogService{
		http:   httpClient,
		cache:  cache,
		logger: logging.NewLogger("catalog"),
	}
}

// Environments returns the environment lookup list. The backend serves it
// under the log routes.
func (s *CatalogService) Environments(ctx context.Context) ([]Environment, error) {
	var envs []Environment
	err := s.cached(ctx, "/logs/environments", &envs, func() error {
		return s.http.Get(ctx, "/logs/environments", nil, &envs)
	})
	return envs, err
}

// Teams returns the team lookup list.
func (s *CatalogService) Teams(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := s.cached(ctx, "/teams", &teams, func() error {
		return s.http.Get(ctx, "/teams", nil, &teams)
	})
	return teams, err
}

// cached serves out from the cache when possible, otherwise runs fetch and
// stores the result.
func (s *CatalogService) cached(ctx context.Context, endpoint string, out any, fetch func() error) error {
	key := refcache.Key{Endpoint: endpoint}

	if s.cache != nil {
		err := s.cache.Get(ctx, key, out)
		if err == nil {
			s.logger.Debug().Str("endpoint", endpoint).Msg("Reference cache hit")
			return nil
		}
		if !errors.Is(err, refcache.ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Reference cache get failed")
		}
	}

	if err := fetch(); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out); err != nil {
			s.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Reference cache set failed")
		}
	}

	return nil
}
