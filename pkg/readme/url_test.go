package readme

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/readmerator/pkg/integrations"
)

func TestFetchURL_Direct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/guide.md" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("# Guide\n\nHello."))
	}))
	defer server.Close()

	art, err := FetchURL(context.Background(), server.URL+"/docs/guide.md")
	if err != nil {
		t.Fatalf("FetchURL failed: %v", err)
	}
	if art.Content != "# Guide\n\nHello." {
		t.Errorf("Content = %q", art.Content)
	}
	if art.Version != "custom" {
		t.Errorf("Version = %q, want custom", art.Version)
	}
	if art.Kind != KindCustom {
		t.Errorf("Kind = %s, want %s", art.Kind, KindCustom)
	}
	if art.SourceURL != server.URL+"/docs/guide.md" {
		t.Errorf("SourceURL = %q", art.SourceURL)
	}
}

func TestFetchURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := FetchURL(context.Background(), server.URL+"/missing.md")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFetchURL_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := FetchURL(context.Background(), server.URL+"/doc.md")
	if !errors.Is(err, integrations.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestIsRepoURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://github.com/psf/requests", true},
		{"https://github.com/psf/requests/", true},
		{"https://github.com/psf/requests/blob/main/README.md", false},
		{"https://raw.githubusercontent.com/psf/requests/main/README.md", false},
		{"https://example.com/docs/readme.md", false},
		{"https://example.com/docs/page", false},
	}

	for _, tt := range tests {
		if got := isRepoURL(tt.url); got != tt.want {
			t.Errorf("isRepoURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/psf/requests", "psf_requests"},
		{"https://github.com/psf/requests/blob/main/README.md", "psf_requests"},
		{"https://example.com/docs/guide.md", "guide"},
		{"https://example.com/docs/guide", "guide"},
		{"https://example.com/", "readme"},
		{"https://github.com/", "readme"},
	}

	for _, tt := range tests {
		if got := NameFromURL(tt.url); got != tt.want {
			t.Errorf("NameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
