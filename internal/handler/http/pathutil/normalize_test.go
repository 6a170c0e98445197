package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "static path unchanged", in: "/weatherforecast", want: "/weatherforecast"},
		{name: "trailing slash stripped", in: "/weatherforecast/", want: "/weatherforecast"},
		{name: "query parameters stripped", in: "/weatherforecast?days=5", want: "/weatherforecast"},
		{name: "health endpoint", in: "/health", want: "/health"},
		{name: "root path kept", in: "/", want: "/"},
		{name: "query on root", in: "/?debug=1", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
