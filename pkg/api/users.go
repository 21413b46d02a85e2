package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/listview"
)

// UserService covers account endpoints. The user list is client-paginated.
type UserService struct {
	http *client.Client
}

// Me returns the current account.
func (s *UserService) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.http.Get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// All returns every account (admin only).
func (s *UserService) All(ctx context.Context, params url.Values) ([]User, error) {
	var users []User
	err := s.http.Get(ctx, "/users/all", params, &users)
	return users, err
}

// Register creates a new account.
func (s *UserService) Register(ctx context.Context, payload UserCreate) (*User, error) {
	var user User
	if err := s.http.Post(ctx, "/users/register", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe updates the current account.
func (s *UserService) UpdateMe(ctx context.Context, payload UserUpdate) (*User, error) {
	var user User
	if err := s.http.Put(ctx, "/users/me", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates another account (admin only).
func (s *UserService) Update(ctx context.Context, userID int64, payload UserUpdate) (*User, error) {
	var user User
	if err := s.http.Put(ctx, fmt.Sprintf("/users/%d", userID), payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account (admin only).
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.http.Delete(ctx, fmt.Sprintf("/users/%d", userID))
}

// AllSource adapts All for a client-paginated list view.
func (s *UserService) AllSource() listview.Source[User] {
	return sliceSource(s.All)
}
