package refcache

import (
	"net/url"
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "endpoint only",
			key:  Key{Endpoint: "/logs/environments"},
			want: "logspect:ref:environments",
		},
		{
			name: "nested endpoint",
			key:  Key{Endpoint: "/teams/my-joined-teams"},
			want: "logspect:ref:teams/my-joined-teams",
		},
		{
			name: "params sorted",
			key: Key{
				Endpoint: "/teams",
				Params:   url.Values{"b": {"2"}, "a": {"1"}},
			},
			want: "logspect:ref:teams:a=1:b=2",
		},
		{
			name: "empty",
			key:  Key{},
			want: "logspect:ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_Deterministic(t *testing.T) {
	key := Key{
		Endpoint: "/teams",
		Params:   url.Values{"x": {"1"}, "y": {"2"}, "z": {"3"}},
	}

	first := key.String()
	for i := 0; i < 20; i++ {
		if got := key.String(); got != first {
			t.Fatalf("Key string not deterministic: %q != %q", got, first)
		}
	}
}
