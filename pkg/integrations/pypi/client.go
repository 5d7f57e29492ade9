package pypi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/readmerator/pkg/cache"
	"github.com/matzehuels/readmerator/pkg/integrations"
)

// PackageInfo holds metadata for a Python package from PyPI.
//
// Package names are normalized following PEP 503 (lowercase, underscores→hyphens).
// Description carries the full long description (usually the project README,
// rendered source); Summary is the one-line abstract.
//
// Zero values: all string fields are empty, ProjectURLs is nil.
// This struct is safe for concurrent reads after construction.
type PackageInfo struct {
	Name        string            // Normalized package name (e.g., "fastapi", never empty in valid info)
	Version     string            // Version string (e.g., "0.104.1", may be empty for unreleased projects)
	Summary     string            // Short one-line description (may be empty)
	Description string            // Long description, typically the project README (may be empty)
	ProjectURLs map[string]string // Project URLs from metadata (e.g., "Homepage", "Source", may be nil)
	HomePage    string            // Homepage URL (may be empty)
}

// Client provides access to the PyPI package registry API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client with the given cache backend.
//
// Parameters:
//   - backend: cache backend for HTTP response caching (nil disables caching)
//   - cacheTTL: how long responses are cached (typical: 1-24 hours)
//
// The returned Client is safe for concurrent use.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "pypi:", cacheTTL, nil),
		baseURL: "https://pypi.org/pypi",
	}
}

// FetchPackage retrieves metadata for a Python package from PyPI.
//
// The pkg parameter is normalized automatically (case-insensitive,
// underscores→hyphens). Package name cannot be empty; an empty string will
// result in an API error.
//
// If refresh is true, the cache is bypassed and a fresh API call is made.
// If refresh is false, cached data is returned if available and not expired.
//
// Returns:
//   - PackageInfo populated with metadata on success
//   - [integrations.ErrNotFound] if the package doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - Other errors for JSON decoding failures
//
// The returned PackageInfo pointer is never nil if err is nil.
// This method is safe for concurrent use.
func (c *Client) FetchPackage(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg = integrations.NormalizePkgName(pkg)
	key := pkg

	var info PackageInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetch(ctx, pkg, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, info *PackageInfo) error {
	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return err
	}

	urls := make(map[string]string, len(data.Info.ProjectURLs))
	for k, v := range data.Info.ProjectURLs {
		if s, ok := v.(string); ok {
			urls[k] = s
		}
	}

	*info = PackageInfo{
		Name:        data.Info.Name,
		Version:     data.Info.Version,
		Summary:     data.Info.Summary,
		Description: data.Info.Description,
		ProjectURLs: urls,
		HomePage:    data.Info.HomePage,
	}
	return nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	ProjectURLs map[string]any `json:"project_urls"`
	HomePage    string         `json:"home_page"`
}
