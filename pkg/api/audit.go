package api

import (
	"context"
	"net/url"

	"github.com/logspect/logspect-client/pkg/client"
	"github.com/logspect/logspect-client/pkg/listview"
)

// AuditService covers the admin audit trail.
//
// Recognized filter fields: user_id, action_type, start_time, end_time.
type AuditService struct {
	http *client.Client
}

// List returns audit records matching params.
func (s *AuditService) List(ctx context.Context, params url.Values) (ListResponse[AuditRecord], error) {
	var out ListResponse[AuditRecord]
	err := s.http.Get(ctx, "/audit", params, &out)
	return out, err
}

// Source adapts List for a list view.
func (s *AuditService) Source() listview.Source[AuditRecord] {
	return listSource(s.List)
}
