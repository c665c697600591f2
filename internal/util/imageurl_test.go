package util

import (
	"testing"
)

const testBaseURL = "http://localhost:8000"

func TestResolveImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "empty path", path: "", expected: ""},
		{
			name:     "absolute url passes through",
			path:     "https://cdn.example.com/img/producto.jpg",
			expected: "https://cdn.example.com/img/producto.jpg",
		},
		{
			name:     "legacy productos prefix gains storage prefix",
			path:     "productos/camisa.jpg",
			expected: "http://localhost:8000/storage/productos/camisa.jpg",
		},
		{
			name:     "storage path joins base url",
			path:     "storage/productos/camisa.jpg",
			expected: "http://localhost:8000/storage/productos/camisa.jpg",
		},
		{
			name:     "rooted storage path keeps single slash",
			path:     "/storage/productos/camisa.jpg",
			expected: "http://localhost:8000/storage/productos/camisa.jpg",
		},
		{
			name:     "bare filename assumed under storage/productos",
			path:     "camisa.jpg",
			expected: "http://localhost:8000/storage/productos/camisa.jpg",
		},
		{
			name:     "rooted bare filename assumed under storage/productos",
			path:     "/camisa.jpg",
			expected: "http://localhost:8000/storage/productos/camisa.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveImageURL(testBaseURL, tt.path); got != tt.expected {
				t.Fatalf("ResolveImageURL(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestResolveImageURLTrimsTrailingBaseSlash(t *testing.T) {
	t.Parallel()

	got := ResolveImageURL("http://localhost:8000/", "storage/productos/a.png")
	want := "http://localhost:8000/storage/productos/a.png"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEnsureAbsoluteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "empty", raw: "", expected: ""},
		{
			name:     "absolute kept",
			raw:      "http://localhost:8000/storage/productos/a.jpg",
			expected: "http://localhost:8000/storage/productos/a.jpg",
		},
		{
			name:     "protocol relative gains http",
			raw:      "//cdn.example.com/a.jpg",
			expected: "http://cdn.example.com/a.jpg",
		},
		{
			name:     "domain relative joins base",
			raw:      "/storage/productos/a.jpg",
			expected: "http://localhost:8000/storage/productos/a.jpg",
		},
		{
			name:     "plain relative joins base",
			raw:      "storage/productos/a.jpg",
			expected: "http://localhost:8000/storage/productos/a.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EnsureAbsoluteURL(testBaseURL, tt.raw); got != tt.expected {
				t.Fatalf("EnsureAbsoluteURL(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}
