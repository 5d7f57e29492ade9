package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/matzehuels/readmerator/pkg/integrations"
)

// DefaultBranches are probed in order when fetching repository files.
var DefaultBranches = []string{"main", "master"}

var repoRE = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// Client fetches raw file content from GitHub repositories via
// raw.githubusercontent.com. It probes well-known branches instead of
// asking the API for the default branch, which avoids authentication
// and rate limits entirely.
//
// Responses are not cached: fetched READMEs land in the output directory,
// which is the real store.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a Client with the standard registry timeout.
func NewClient() *Client {
	return NewClientWith(integrations.NewHTTPClient())
}

// NewClientWith creates a Client using the provided HTTP client. Callers
// choose the timeout this way: batch resolution uses the standard 10s
// client, while direct URL fetches allow 30s.
func NewClientWith(httpClient *http.Client) *Client {
	return &Client{
		http:    httpClient,
		baseURL: "https://raw.githubusercontent.com",
	}
}

// FetchReadme retrieves README.md from the first default branch that has one.
// Returns [integrations.ErrNotFound] when no candidate branch serves the file.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	return c.FetchFile(ctx, owner, repo, "README.md")
}

// FetchFile retrieves a repository file from the first branch that serves it.
// Errors on one branch (including network failures) fall through to the next
// candidate; only context cancellation aborts the probe early.
func (c *Client) FetchFile(ctx context.Context, owner, repo, path string) (string, error) {
	for _, branch := range DefaultBranches {
		content, err := c.fetchRaw(ctx, fmt.Sprintf("%s/%s/%s/%s/%s", c.baseURL, owner, repo, branch, path))
		if err == nil {
			return content, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("%w: no %s in %s/%s on branches %s",
		integrations.ErrNotFound, path, owner, repo, strings.Join(DefaultBranches, ", "))
}

func (c *Client) fetchRaw(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", integrations.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", integrations.ErrNotFound
	default:
		return "", fmt.Errorf("%w: status %d", integrations.ErrNetwork, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", integrations.ErrNetwork, err)
	}
	return string(data), nil
}

// ParseRepoURL extracts owner and repository name from a github.com URL.
// Trailing slashes and ".git" suffixes on the repository are stripped.
// ok is false when the URL doesn't reference a github.com repository.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	m := repoRE.FindStringSubmatch(raw)
	if len(m) < 3 {
		return "", "", false
	}
	owner = m[1]
	repo = strings.TrimSuffix(strings.TrimRight(m[2], "/"), ".git")
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}
