package readme

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/matzehuels/readmerator/pkg/integrations"
	"github.com/matzehuels/readmerator/pkg/integrations/github"
)

// DefaultURLTimeout bounds direct document fetches. It is deliberately
// looser than the registry timeout: a one-off URL fetch is interactive and
// worth waiting for.
const DefaultURLTimeout = 30 * time.Second

// FetchURL retrieves a documentation file from an arbitrary URL.
//
// A github.com URL that points at a repository rather than a file (no
// /blob/ segment, no .md suffix) resolves through the branch probe to the
// repo's raw README. Everything else, raw files and other hosts included,
// is fetched verbatim. Responses are never cached.
func FetchURL(ctx context.Context, rawURL string) (*Artifact, error) {
	httpClient := &http.Client{Timeout: DefaultURLTimeout}

	var content string
	if isRepoURL(rawURL) {
		owner, repo, ok := github.ParseRepoURL(rawURL)
		if !ok {
			return nil, fmt.Errorf("%w: no owner/repo in %s", integrations.ErrNotFound, rawURL)
		}
		readme, err := github.NewClientWith(httpClient).FetchReadme(ctx, owner, repo)
		if err != nil {
			return nil, fmt.Errorf("repo readme: %w", err)
		}
		content = readme
	} else {
		text, err := fetchText(ctx, httpClient, rawURL)
		if err != nil {
			return nil, err
		}
		content = text
	}

	return &Artifact{
		Content:   content,
		Version:   "custom",
		SourceURL: rawURL,
		Kind:      KindCustom,
	}, nil
}

// NameFromURL derives an output name for a direct fetch: owner_repo for
// github.com URLs, otherwise the last path segment without its .md suffix,
// falling back to "readme".
func NameFromURL(rawURL string) string {
	if strings.Contains(rawURL, "github.com") {
		if owner, repo, ok := github.ParseRepoURL(rawURL); ok {
			return owner + "_" + repo
		}
		return "readme"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "readme"
	}
	seg := strings.TrimSuffix(path.Base(u.Path), ".md")
	if seg == "" || seg == "." || seg == "/" {
		return "readme"
	}
	return seg
}

// isRepoURL reports whether rawURL names a github.com repository rather
// than a concrete file.
func isRepoURL(rawURL string) bool {
	return strings.Contains(rawURL, "github.com") &&
		!strings.Contains(rawURL, "/blob/") &&
		!strings.HasSuffix(rawURL, ".md")
}

// fetchText GETs a URL and returns the body of a 200 response. Any other
// outcome is an error; direct fetches are one-shot, with no retries.
func fetchText(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", integrations.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", integrations.ErrNotFound, rawURL)
	default:
		return "", fmt.Errorf("%w: status %d from %s", integrations.ErrNetwork, resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", integrations.ErrNetwork, err)
	}
	return string(data), nil
}
