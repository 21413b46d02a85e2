package api

import (
	"context"
	"net/url"

	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/listview"
)

// AuthService covers login and login-history endpoints.
type AuthService struct {
	http *client.Client
}

// loginRequest is the POST /auth/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and returns the issued token. Storing the token in
// the session is the caller's decision.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	var token Token
	err := s.http.Post(ctx, "/auth/login", nil, loginRequest{Email: email, Password: password}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// MyLoginHistory returns the caller's own login history.
func (s *AuthService) MyLoginHistory(ctx context.Context, params url.Values) (ListResponse[LoginRecord], error) {
	var out ListResponse[LoginRecord]
	err := s.http.Get(ctx, "/auth/login-history/me", params, &out)
	return out, err
}

// AllLoginHistory returns every user's login history (admin only).
func (s *AuthService) AllLoginHistory(ctx context.Context, params url.Values) (ListResponse[LoginRecord], error) {
	var out ListResponse[LoginRecord]
	err := s.http.Get(ctx, "/auth/login-history/all", params, &out)
	return out, err
}

// MyLoginHistorySource adapts MyLoginHistory for a client-paginated list view.
func (s *AuthService) MyLoginHistorySource() listview.Source[LoginRecord] {
	return listSource(s.MyLoginHistory)
}

// AllLoginHistorySource adapts AllLoginHistory for a client-paginated list view.
func (s *AuthService) AllLoginHistorySource() listview.Source[LoginRecord] {
	return listSource(s.AllLoginHistory)
}
