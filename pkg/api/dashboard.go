package api

import (
	"context"

	"github.com/logspect/logspect-client/pkg/client"
)

// DashboardService fetches the precomputed dashboard payloads. All
// analytics live server-side; the client renders them as-is.
type DashboardService struct {
	http *client.Client
}

// Summary returns the admin dashboard.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	if err := s.http.Get(ctx, "/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserSummary returns the per-user dashboard.
func (s *DashboardService) UserSummary(ctx context.Context) (*UserSummary, error) {
	var out UserSummary
	if err := s.http.Get(ctx, "/dashboard/user-summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
