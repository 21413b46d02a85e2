package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSession_LoginLogout(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Authenticated() {
		t.Error("New session should not be authenticated")
	}

	if err := s.Login("tok-123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if s.Token() != "tok-123" {
		t.Errorf("Token = %q, want tok-123", s.Token())
	}
	if !s.Authenticated() {
		t.Error("Session should be authenticated after login")
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.Token() != "" {
		t.Errorf("Token after logout = %q, want empty", s.Token())
	}
}

func TestSession_LoginRequiresToken(t *testing.T) {
	s, _ := New(nil)
	if err := s.Login(""); err == nil {
		t.Error("Login with empty token should fail")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "session.toml")
	store := NewFileStore(path)

	// Missing file is not an error
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if token != "" {
		t.Errorf("Load on missing file = %q, want empty", token)
	}

	if err := store.Save("tok-456"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// File permissions must be owner-only
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("File permissions = %o, want 600", perm)
	}

	token, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if token != "tok-456" {
		t.Errorf("Load = %q, want tok-456", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Credential file should be removed after Clear")
	}

	// Clear is idempotent
	if err := store.Clear(); err != nil {
		t.Errorf("Second Clear failed: %v", err)
	}
}

func TestSession_RestoresPersistedToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	store := NewFileStore(path)

	s1, err := New(store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := s1.Login("persisted-tok"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A second session over the same store sees the token
	s2, err := New(store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s2.Token() != "persisted-tok" {
		t.Errorf("Restored token = %q, want persisted-tok", s2.Token())
	}

	// Logout clears both memory and disk
	if err := s2.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	s3, err := New(store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s3.Authenticated() {
		t.Error("Session should not be authenticated after logout elsewhere")
	}
}
