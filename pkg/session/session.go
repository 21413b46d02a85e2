// Package session holds the current API credential for the process.
//
// The backend issues a bearer token at login; every subsequent request must
// carry it. Instead of reading a shared location ad hoc, callers inject a
// *Session into the HTTP client and the session owns the token lifecycle:
// Login stores it, Logout clears it, Token reads it.
package session

import (
	"fmt"
	"sync"

	"github.com/logspect/logspect-client/pkg/logging"
	"github.com/rs/zerolog"
)

// Store persists a token across process restarts.
// Implementations must tolerate a missing token (return "" with nil error).
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Session is a thread-safe holder for the current bearer token.
// The zero value is not usable; create one with New.
type Session struct {
	mu     sync.RWMutex
	token  string
	store  Store
	logger zerolog.Logger
}

// New creates a session. If store is non-nil, a previously persisted token
// is loaded immediately so a restarted process stays logged in.
func New(store Store) (*Session, error) {
	s := &Session{
		store:  store,
		logger: logging.NewLogger("session"),
	}

	if store != nil {
		token, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load persisted token: %w", err)
		}
		s.token = token
		if token != "" {
			s.logger.Debug().Msg("Restored persisted session token")
		}
	}

	return s, nil
}

// Login stores the token and persists it if a store is configured.
func (s *Session) Login(token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.store != nil {
		if err := s.store.Save(token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	}

	s.logger.Info().Msg("Session established")
	return nil
}

// Logout clears the token in memory and in the store.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			return fmt.Errorf("clear persisted token: %w", err)
		}
	}

	s.logger.Info().Msg("Session cleared")
	return nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
