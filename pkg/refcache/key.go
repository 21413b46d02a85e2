package refcache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies one cached reference list.
type Key struct {
	// Endpoint is the backend endpoint path (e.g. "/logs/environments")
	Endpoint string

	// Params are the query parameters of the read, if any
	Params url.Values
}

// String generates a deterministic Redis key.
// Format: logspect:ref:endpoint:param1=val1:param2=val2
//
// Example:
//
//	logspect:ref:teams/my-joined-teams
func (k Key) String() string {
	parts := []string{"logspect", "ref"}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	// Sorted params for determinism
	if len(k.Params) > 0 {
		keys := make([]string, 0, len(k.Params))
		for key := range k.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Params.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
