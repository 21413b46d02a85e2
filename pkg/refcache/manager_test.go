package refcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a test Redis client.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

type refTeam struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
}

func TestManager_SetGet(t *testing.T) {
	redisClient := setupTestRedis(t)
	manager := NewManager(redisClient, time.Minute)
	ctx := context.Background()

	key := Key{Endpoint: "/teams"}
	teams := []refTeam{
		{TeamID: 1, TeamName: "Platform"},
		{TeamID: 2, TeamName: "Payments"},
	}

	if err := manager.Set(ctx, key, teams); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got []refTeam
	if err := manager.Get(ctx, key, &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 2 || got[0].TeamName != "Platform" {
		t.Errorf("Get = %+v, want the stored teams", got)
	}
}

func TestManager_Miss(t *testing.T) {
	redisClient := setupTestRedis(t)
	manager := NewManager(redisClient, time.Minute)

	var got []refTeam
	err := manager.Get(context.Background(), Key{Endpoint: "/missing"}, &got)
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get on missing key = %v, want ErrCacheMiss", err)
	}
}

func TestManager_Delete(t *testing.T) {
	redisClient := setupTestRedis(t)
	manager := NewManager(redisClient, time.Minute)
	ctx := context.Background()

	key := Key{Endpoint: "/logs/environments"}
	if err := manager.Set(ctx, key, []refTeam{{TeamID: 1}}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := manager.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var got []refTeam
	if err := manager.Get(ctx, key, &got); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}
}

func TestManager_Expiry(t *testing.T) {
	redisClient := setupTestRedis(t)
	manager := NewManager(redisClient, 50*time.Millisecond)
	ctx := context.Background()

	key := Key{Endpoint: "/teams"}
	if err := manager.Set(ctx, key, []refTeam{{TeamID: 1}}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	var got []refTeam
	if err := manager.Get(ctx, key, &got); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after TTL = %v, want ErrCacheMiss", err)
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer redisClient.Close()

	manager := NewManager(redisClient, 0)
	if manager.TTL() != 5*time.Minute {
		t.Errorf("TTL = %v, want 5m default", manager.TTL())
	}
}
