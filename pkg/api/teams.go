package api

import (
	"context"

	"github.com/logspect/logspect-client/pkg/client"
)

// TeamService covers team membership endpoints.
type TeamService struct {
	http *client.Client
}

// List returns every team (used by admin filter dropdowns).
func (s *TeamService) List(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := s.http.Get(ctx, "/teams", nil, &teams)
	return teams, err
}

// MyJoinedTeams returns the teams the caller is an active member of.
func (s *TeamService) MyJoinedTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := s.http.Get(ctx, "/teams/my-joined-teams", nil, &teams)
	return teams, err
}

// MyTeamID returns the caller's active team id.
func (s *TeamService) MyTeamID(ctx context.Context) (int64, error) {
	var out struct {
		TeamID int64 `json:"team_id"`
	}
	if err := s.http.Get(ctx, "/teams/my-team-id", nil, &out); err != nil {
		return 0, err
	}
	return out.TeamID, nil
}
