package integration

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/logspect/logspect-client/internal/testutil"
	"github.com/logspect/logspect-client/pkg/api"
	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/refcache"
	"github.com/logspect/logspect-client/pkg/session"
)

// setupRedis creates a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		redisClient.Close()
		container.Terminate(ctx)
	}

	return redisClient, cleanup
}

// staticToken is a fixed-token TokenSource.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func newHTTPClient(t *testing.T, backend *testutil.MockBackend, tokens client.TokenSource) *client.Client {
	t.Helper()

	cfg := client.DefaultConfig(backend.URL(), tokens)
	cfg.MaxRetries = 3
	cfg.InitialBackoff = 50 * time.Millisecond

	c, err := client.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

// TestReferenceCacheFlow tests the full reference-data path: backend fetch
// on miss, Redis store, cache hit on the second read.
func TestReferenceCacheFlow(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	backend := testutil.NewMockBackend()
	defer backend.Close()

	backend.SetResponse("/logs/environments", testutil.NewJSONResponse(
		`[{"environment_id": 5, "environment_code": "PROD"},
		  {"environment_id": 6, "environment_code": "STAGING"}]`))

	cache := refcache.NewManager(redisClient, 5*time.Minute)
	svc := api.New(newHTTPClient(t, backend, staticToken("tok")), cache)

	ctx := context.Background()

	// Request 1: cache miss, backend fetch, Redis store
	envs, err := svc.Catalog.Environments(ctx)
	if err != nil {
		t.Fatalf("First read failed: %v", err)
	}
	if len(envs) != 2 {
		t.Errorf("Environments = %d, want 2", len(envs))
	}
	if backend.GetPathCount("/logs/environments") != 1 {
		t.Errorf("Backend reads = %d, want 1", backend.GetPathCount("/logs/environments"))
	}

	// Request 2: served from Redis, no backend traffic
	envs2, err := svc.Catalog.Environments(ctx)
	if err != nil {
		t.Fatalf("Second read failed: %v", err)
	}
	if len(envs2) != 2 {
		t.Errorf("Cached environments = %d, want 2", len(envs2))
	}
	if backend.GetPathCount("/logs/environments") != 1 {
		t.Errorf("Backend reads after cache hit = %d, want 1", backend.GetPathCount("/logs/environments"))
	}
}

// TestReferenceCacheExpiry tests that expired entries fall back to the backend.
func TestReferenceCacheExpiry(t *testing.T) {
	redisClient, cleanup := setupRedis(t)
	defer cleanup()

	backend := testutil.NewMockBackend()
	defer backend.Close()

	backend.SetResponse("/teams", testutil.NewJSONResponse(
		`[{"team_id": 2, "team_name": "Platform"}]`))

	cache := refcache.NewManager(redisClient, 1*time.Second)
	svc := api.New(newHTTPClient(t, backend, staticToken("tok")), cache)

	ctx := context.Background()

	if _, err := svc.Catalog.Teams(ctx); err != nil {
		t.Fatalf("First read failed: %v", err)
	}

	// Wait past the TTL
	time.Sleep(1500 * time.Millisecond)

	if _, err := svc.Catalog.Teams(ctx); err != nil {
		t.Fatalf("Post-expiry read failed: %v", err)
	}

	if got := backend.GetPathCount("/teams"); got != 2 {
		t.Errorf("Backend reads = %d, want 2 (entry expired)", got)
	}
}

// TestRetry5xxErrors tests that 5xx errors trigger retries.
func TestRetry5xxErrors(t *testing.T) {
	backend := testutil.NewMockBackend()
	defer backend.Close()

	requestCount := 0
	backend.SetHandler("/logs", func(w http.ResponseWriter, r *http.Request) {
		requestCount++

		// First 2 attempts fail with 500
		if requestCount <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "server error"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"total": 1, "items": [{"log_id": 1, "message_line": "ok"}]}`))
	})

	svc := api.New(newHTTPClient(t, backend, staticToken("tok")), nil)

	resp, err := svc.Logs.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("Request failed after retries: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Total)
	}
	if requestCount != 3 {
		t.Errorf("Request attempts = %d, want 3 (2 retries + 1 success)", requestCount)
	}
}

// TestNoRetry4xxErrors tests that 4xx errors do NOT trigger retries.
func TestNoRetry4xxErrors(t *testing.T) {
	backend := testutil.NewMockBackend()
	defer backend.Close()

	backend.SetResponse("/logs", testutil.NewErrorResponse(http.StatusForbidden, "Not permitted"))

	svc := api.New(newHTTPClient(t, backend, staticToken("tok")), nil)

	_, err := svc.Logs.List(context.Background(), nil)
	if err == nil {
		t.Fatal("Request should fail")
	}
	if client.StatusCode(err) != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", client.StatusCode(err))
	}

	if backend.GetPathCount("/logs") != 1 {
		t.Errorf("Backend requests = %d, want 1 (no retries for 4xx)", backend.GetPathCount("/logs"))
	}
}

// TestSessionFlow tests login, authenticated requests and logout end to end.
func TestSessionFlow(t *testing.T) {
	backend := testutil.NewMockBackend()
	defer backend.Close()

	backend.SetResponse("/auth/login", testutil.NewJSONResponse(
		`{"access_token": "jwt-xyz", "token_type": "bearer", "expires_in": 3600, "role": "user"}`))
	backend.SetResponse("/logs/me", testutil.NewJSONResponse(`{"total": 0, "items": []}`))

	store := session.NewFileStore(filepath.Join(t.TempDir(), "credentials.toml"))
	sess, err := session.New(store)
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}

	svc := api.New(newHTTPClient(t, backend, sess), nil)
	ctx := context.Background()

	// Login happens without a token
	token, err := svc.Auth.Login(ctx, "user@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := sess.Login(token.AccessToken); err != nil {
		t.Fatalf("Session login failed: %v", err)
	}

	// Subsequent requests carry the bearer token
	if _, err := svc.Logs.ListMine(ctx, nil); err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if got := backend.LastRequestHeader.Get("Authorization"); got != "Bearer jwt-xyz" {
		t.Errorf("Authorization = %q, want Bearer jwt-xyz", got)
	}

	// Logout drops the token from memory and disk
	if err := sess.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := svc.Logs.ListMine(ctx, nil); err != nil {
		t.Fatalf("ListMine after logout failed: %v", err)
	}
	if got := backend.LastRequestHeader.Get("Authorization"); got != "" {
		t.Errorf("Authorization after logout = %q, want empty", got)
	}
}
