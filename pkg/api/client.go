package api

import (
	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/refcache"
)

// Client bundles the typed services over one shared HTTP client.
type Client struct {
	http *client.Client

	Auth      *AuthService
	Logs      *LogService
	Files     *FileService
	Users     *UserService
	Teams     *TeamService
	Audits    *AuditService
	Dashboard *DashboardService
	Catalog   *CatalogService
}

// New creates the service bundle. cache may be nil to disable the
// reference-data cache.
func New(httpClient *client.Client, cache *refcache.Manager) *Client {
	c := &Client{http: httpClient}

	c.Auth = &AuthService{http: httpClient}
	c.Logs = &LogService{http: httpClient}
	c.Files = &FileService{http: httpClient}
	c.Users = &UserService{http: httpClient}
	c.Teams = &TeamService{http: httpClient}
	c.Audits = &AuditService{http: httpClient}
	c.Dashboard = &DashboardService{http: httpClient}
	c.Catalog = NewCatalogService(httpClient, cache)

	return c
}
