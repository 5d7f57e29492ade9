package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/readmerator/pkg/cache"
	"github.com/matzehuels/readmerator/pkg/integrations"
)

func TestClient_FetchPackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/flask/json" {
			resp := apiResponse{
				Info: apiInfo{
					Name:        "Flask",
					Version:     "2.0.0",
					Summary:     "A micro web framework",
					Description: strings.Repeat("Flask is a lightweight WSGI web application framework. ", 5),
					ProjectURLs: map[string]any{
						"Source": "https://github.com/pallets/flask",
					},
				},
			}
			json.NewEncoder(w).Encode(resp)
		} else {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	info, err := c.FetchPackage(context.Background(), "flask", true)
	if err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}

	if info.Name != "Flask" {
		t.Errorf("expected name Flask, got %s", info.Name)
	}
	if info.Version == "" {
		t.Error("expected non-empty version")
	}
	if len(info.Description) < 100 {
		t.Error("expected long description to survive decoding")
	}
	if info.ProjectURLs["Source"] != "https://github.com/pallets/flask" {
		t.Errorf("unexpected project URLs: %v", info.ProjectURLs)
	}
}

func TestClient_FetchPackage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(t, server.URL)

	_, err := c.FetchPackage(context.Background(), "missing-pkg", true)
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchPackage_UsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(apiResponse{Info: apiInfo{Name: "requests", Version: "2.31.0"}})
	}))
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := &Client{
		Client:  integrations.NewClient(backend, "pypi:", time.Hour, nil),
		baseURL: server.URL,
	}

	ctx := context.Background()
	if _, err := c.FetchPackage(ctx, "requests", false); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := c.FetchPackage(ctx, "requests", false); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call with warm cache, got %d", calls)
	}

	// refresh bypasses the cached response
	if _, err := c.FetchPackage(ctx, "requests", true); err != nil {
		t.Fatalf("refresh fetch: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected refresh to hit upstream, got %d calls", calls)
	}
}

func TestNormalizePkgName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Django", "django"},
		{"Flask_App", "flask-app"},
		{"some_package-name", "some-package-name"},
		{"UPPERCASE", "uppercase"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := integrations.NormalizePkgName(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return &Client{
		Client:  integrations.NewClient(cache.NewNullCache(), "pypi:", time.Hour, nil),
		baseURL: serverURL,
	}
}
