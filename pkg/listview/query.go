package listview

import (
	"net/url"
)

// Query is the set of active filter fields for a list screen. Values are
// scalars (strings, ISO dates, enumerated codes). An empty-string value
// means "no filter on this field", never "filter on empty string".
type Query struct {
	fields map[string]string
}

// NewQuery returns an empty query.
func NewQuery() Query {
	return Query{fields: make(map[string]string)}
}

// Set updates one filter field.
func (q *Query) Set(field, value string) {
	if q.fields == nil {
		q.fields = make(map[string]string)
	}
	q.fields[field] = value
}

// Get returns the current value of a filter field.
func (q Query) Get(field string) string {
	return q.fields[field]
}

// Clear resets the query to its all-empty initial form.
func (q *Query) Clear() {
	q.fields = make(map[string]string)
}

// Values builds the outbound query parameters, dropping every field whose
// value is the empty string.
func (q Query) Values() url.Values {
	values := url.Values{}
	for field, value := range q.fields {
		if value == "" {
			continue
		}
		values.Set(field, value)
	}
	return values
}
