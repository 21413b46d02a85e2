package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

// staticTokens is a TokenSource with a fixed token.
type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, baseURL string, tokens TokenSource) *Client {
	t.Helper()

	cfg := DefaultConfig(baseURL, tokens)
	cfg.MaxRetries = 3
	cfg.InitialBackoff = 1 * time.Millisecond

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "valid config",
			config:      Config{BaseURL: "http://localhost:8000/api/v1"},
			expectError: false,
		},
		{
			name:        "missing base URL",
			config:      Config{},
			expectError: true,
		},
		{
			name:        "unsupported scheme",
			config:      Config{BaseURL: "ftp://example.com"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if c == nil {
				t.Error("Client is nil")
			}
		})
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, staticTokens("tok-abc"))
	if err := c.Get(context.Background(), "/users/me", nil, &struct{}{}); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want 'Bearer tok-abc'", gotAuth)
	}
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, staticTokens(""))
	if err := c.Get(context.Background(), "/teams", nil, &struct{}{}); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_DecodesBackendDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	err := c.Get(context.Background(), "/users/me", nil, &struct{}{})
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Error is not *APIError: %v", err)
	}
	if apiErr.Detail != "Invalid credentials" {
		t.Errorf("Detail = %q, want 'Invalid credentials'", apiErr.Detail)
	}
	if apiErr.ErrorClass != ErrorClassClient {
		t.Errorf("ErrorClass = %q, want client", apiErr.ErrorClass)
	}
	if !IsUnauthorized(err) {
		t.Error("IsUnauthorized should be true for 401")
	}
	if Detail(err, "fallback") != "Invalid credentials" {
		t.Errorf("Detail helper = %q", Detail(err, "fallback"))
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"total": 0, "items": []}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	var out struct {
		Total int `json:"total"`
	}
	if err := c.Get(context.Background(), "/logs", nil, &out); err != nil {
		t.Fatalf("Get failed after retries: %v", err)
	}

	if got := calls.Load(); got != 3 {
		t.Errorf("Server saw %d requests, want 3", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "bad filter"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	err := c.Get(context.Background(), "/logs", nil, &struct{}{})
	if err == nil {
		t.Fatal("Expected error for 400 response")
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("Server saw %d requests, want 1 (no retry on 4xx)", got)
	}
}

func TestClient_RetryExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	err := c.Get(context.Background(), "/logs", nil, &struct{}{})
	if !errors.Is(err, ErrRetryExhausted) {
		t.Errorf("Expected ErrRetryExhausted, got %v", err)
	}
}

func TestClient_RetriesReplayRequestBody(t *testing.T) {
	var calls atomic.Int32
	var lastBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		lastBody = string(buf[:n])
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	body := map[string]string{"email": "a@b.c"}
	if err := c.Post(context.Background(), "/auth/login", nil, body, &struct{}{}); err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if lastBody != `{"email":"a@b.c"}` {
		t.Errorf("Retried body = %q, want original payload", lastBody)
	}
}

func TestEndpointURL(t *testing.T) {
	c := newTestClient(t, "http://localhost:8000/api/v1", nil)

	query := url.Values{}
	query.Set("severity_code", "ERROR")

	got := c.endpointURL("/logs", query)
	want := "http://localhost:8000/api/v1/logs?severity_code=ERROR"
	if got != want {
		t.Errorf("endpointURL = %q, want %q", got, want)
	}

	// No query
	got = c.endpointURL("/teams", nil)
	if got != "http://localhost:8000/api/v1/teams" {
		t.Errorf("endpointURL = %q", got)
	}
}

func TestDecodeDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain string", `{"detail": "Log not found"}`, "Log not found"},
		{"missing detail", `{"message": "x"}`, ""},
		{"not json", `<html>`, ""},
		{"structured detail", `{"detail": [{"loc": ["body"]}]}`, `[{"loc": ["body"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeDetail([]byte(tt.body)); got != tt.want {
				t.Errorf("decodeDetail = %q, want %q", got, tt.want)
			}
		})
	}
}
