package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/listview"
)

// LogService covers the log-explorer endpoints. GET /logs is
// server-paginated: filters plus limit/offset, with an authoritative total
// in the response.
//
// Recognized filter fields: search, severity_code, environment_code,
// category_name, team_id, start_date, end_date.
type LogService struct {
	http *client.Client
}

// List returns one page of log entries matching params.
func (s *LogService) List(ctx context.Context, params url.Values) (ListResponse[LogEntry], error) {
	var out ListResponse[LogEntry]
	err := s.http.Get(ctx, "/logs", params, &out)
	return out, err
}

// ListMine returns the caller's own (scope=me) or team (scope=team) log
// entries. The scope field rides along in params.
func (s *LogService) ListMine(ctx context.Context, params url.Values) (ListResponse[LogEntry], error) {
	var out ListResponse[LogEntry]
	err := s.http.Get(ctx, "/logs/me", params, &out)
	return out, err
}

// Environments returns the environment lookup list, used to populate the
// explorer's environment filter. The catalog service serves the same
// route through the reference cache.
func (s *LogService) Environments(ctx context.Context) ([]Environment, error) {
	var out []Environment
	err := s.http.Get(ctx, "/logs/environments", nil, &out)
	return out, err
}

// Delete permanently removes one log entry.
func (s *LogService) Delete(ctx context.Context, logID int64) error {
	return s.http.Delete(ctx, fmt.Sprintf("/logs/%d", logID))
}

// Source adapts List for a server-paginated list view.
func (s *LogService) Source() listview.Source[LogEntry] {
	return listSource(s.List)
}

// MineSource adapts ListMine for a server-paginated list view.
func (s *LogService) MineSource() listview.Source[LogEntry] {
	return listSource(s.ListMine)
}
