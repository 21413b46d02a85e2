package listview

import (
	"testing"
)

func TestQuery_ValuesOmitsEmptyFields(t *testing.T) {
	q := NewQuery()
	q.Set("severity_code", "ERROR")
	q.Set("start_date", "2024-01-01")
	q.Set("team_id", "")
	q.Set("search", "")

	values := q.Values()

	if got := values.Get("severity_code"); got != "ERROR" {
		t.Errorf("severity_code = %q, want ERROR", got)
	}
	if got := values.Get("start_date"); got != "2024-01-01" {
		t.Errorf("start_date = %q, want 2024-01-01", got)
	}
	if _, ok := values["team_id"]; ok {
		t.Error("team_id with empty value must be omitted")
	}
	if _, ok := values["search"]; ok {
		t.Error("search with empty value must be omitted")
	}
	if len(values) != 2 {
		t.Errorf("Values has %d fields, want 2", len(values))
	}
}

func TestQuery_SetOverwrites(t *testing.T) {
	q := NewQuery()
	q.Set("search", "timeout")
	q.Set("search", "refused")

	if got := q.Get("search"); got != "refused" {
		t.Errorf("search = %q, want refused", got)
	}
}

func TestQuery_Clear(t *testing.T) {
	q := NewQuery()
	q.Set("severity_code", "WARN")
	q.Set("environment_code", "PROD")
	q.Clear()

	if len(q.Values()) != 0 {
		t.Errorf("Values after Clear = %v, want empty", q.Values())
	}
	if q.Get("severity_code") != "" {
		t.Error("Cleared field should read as empty")
	}
}

func TestQuery_ZeroValueUsable(t *testing.T) {
	var q Query
	q.Set("search", "x")
	if got := q.Get("search"); got != "x" {
		t.Errorf("search = %q, want x", got)
	}
}
