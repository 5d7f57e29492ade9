package readme

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/readmerator/pkg/cache"
	"github.com/matzehuels/readmerator/pkg/integrations/github"
	"github.com/matzehuels/readmerator/pkg/integrations/npm"
	"github.com/matzehuels/readmerator/pkg/integrations/pypi"
	"github.com/matzehuels/readmerator/pkg/manifest"
)

// ErrNoDocumentation means every step of a package's resolution chain came
// up empty: no long description, no reachable repository README, not even a
// one-line summary to synthesize from.
var ErrNoDocumentation = errors.New("no documentation available")

// projectURLKeys is the order in which PyPI project_urls entries are
// considered as repository candidates.
var projectURLKeys = []string{"Source", "Homepage", "Repository", "GitHub"}

// Options configure a Resolver. The zero value is usable: no caching and
// the standard length thresholds.
type Options struct {
	// Cache backs the registry clients' HTTP response cache. Nil disables
	// caching.
	Cache cache.Cache

	// CacheTTL is how long registry responses stay fresh. Zero means
	// DefaultCacheTTL.
	CacheTTL time.Duration

	// Refresh bypasses cached registry responses. Fresh responses are
	// still written back.
	Refresh bool

	// MinDescription is the length a PyPI long description must exceed to
	// be used as-is. Zero means DefaultMinDescription.
	MinDescription int

	// MinReadme is the length an npm registry readme must exceed to be
	// used as-is. Zero means DefaultMinReadme.
	MinReadme int
}

// Defaults for Options fields left zero.
const (
	DefaultCacheTTL       = 24 * time.Hour
	DefaultMinDescription = 100
	DefaultMinReadme      = 50
)

// WithDefaults fills unset fields with defaults.
func (o Options) WithDefaults() Options {
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.MinDescription == 0 {
		o.MinDescription = DefaultMinDescription
	}
	if o.MinReadme == 0 {
		o.MinReadme = DefaultMinReadme
	}
	return o
}

// pythonRegistry and npmRegistry are what Resolve needs from the registry
// clients; readmeHost is the repository fallback. Narrow interfaces keep
// the chains testable without HTTP.
type pythonRegistry interface {
	FetchPackage(ctx context.Context, pkg string, refresh bool) (*pypi.PackageInfo, error)
}

type npmRegistry interface {
	FetchPackage(ctx context.Context, pkg string, refresh bool) (*npm.PackageInfo, error)
}

type readmeHost interface {
	FetchReadme(ctx context.Context, owner, repo string) (string, error)
}

// Resolver turns (ecosystem, package) pairs into documentation artifacts by
// walking a per-ecosystem fallback chain. It is safe for concurrent use.
type Resolver struct {
	pypi   pythonRegistry
	npm    npmRegistry
	github readmeHost

	refresh        bool
	minDescription int
	minReadme      int
}

// NewResolver wires a Resolver to the real PyPI, npm, and GitHub endpoints.
func NewResolver(opts Options) *Resolver {
	opts = opts.WithDefaults()
	return &Resolver{
		pypi:           pypi.NewClient(opts.Cache, opts.CacheTTL),
		npm:            npm.NewClient(opts.Cache, opts.CacheTTL),
		github:         github.NewClient(),
		refresh:        opts.Refresh,
		minDescription: opts.MinDescription,
		minReadme:      opts.MinReadme,
	}
}

// Resolve fetches the best available documentation for pkg. The error is
// [ErrNoDocumentation] when the package exists but has nothing readable,
// and wraps the registry error (including [integrations.ErrNotFound])
// when the package itself cannot be fetched.
func (r *Resolver) Resolve(ctx context.Context, eco manifest.Ecosystem, pkg string) (*Artifact, error) {
	switch eco {
	case manifest.Python:
		return r.resolvePython(ctx, pkg)
	case manifest.NPM:
		return r.resolveNPM(ctx, pkg)
	default:
		return nil, fmt.Errorf("unknown ecosystem: %s", eco)
	}
}

// resolvePython walks the Python chain: PyPI long description, then the
// README of a GitHub repository named in project_urls, then a document
// synthesized from the one-line summary.
func (r *Resolver) resolvePython(ctx context.Context, pkg string) (*Artifact, error) {
	info, err := r.pypi.FetchPackage(ctx, pkg, r.refresh)
	if err != nil {
		return nil, fmt.Errorf("pypi metadata: %w", err)
	}

	version := orUnknown(info.Version)
	pageURL := "https://pypi.org/project/" + pkg + "/"

	if len(info.Description) > r.minDescription {
		return &Artifact{
			Content:   info.Description,
			Version:   version,
			SourceURL: pageURL,
			Kind:      KindRegistryDescription,
		}, nil
	}

	for _, key := range projectURLKeys {
		url := info.ProjectURLs[key]
		if !strings.Contains(url, "github.com") {
			continue
		}
		owner, repo, ok := github.ParseRepoURL(url)
		if !ok {
			continue
		}
		content, err := r.github.FetchReadme(ctx, owner, repo)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		return &Artifact{
			Content:   content,
			Version:   version,
			SourceURL: url,
			Kind:      KindHostedReadme,
		}, nil
	}

	if info.Summary != "" {
		return summarize(pkg, info.Summary, pageURL, version), nil
	}
	return nil, fmt.Errorf("%s: %w", pkg, ErrNoDocumentation)
}

// resolveNPM walks the npm chain: the registry record's readme, then a
// document synthesized from its description.
func (r *Resolver) resolveNPM(ctx context.Context, pkg string) (*Artifact, error) {
	info, err := r.npm.FetchPackage(ctx, pkg, r.refresh)
	if err != nil {
		return nil, fmt.Errorf("npm metadata: %w", err)
	}

	version := orUnknown(info.Version)
	pageURL := "https://www.npmjs.com/package/" + pkg

	if len(info.Readme) > r.minReadme {
		return &Artifact{
			Content:   info.Readme,
			Version:   version,
			SourceURL: pageURL,
			Kind:      KindRegistryDescription,
		}, nil
	}

	if info.Description != "" {
		return summarize(pkg, info.Description, pageURL, version), nil
	}
	return nil, fmt.Errorf("%s: %w", pkg, ErrNoDocumentation)
}

// summarize builds a minimal markdown document from a registry one-liner.
func summarize(pkg, summary, url, version string) *Artifact {
	return &Artifact{
		Content:   fmt.Sprintf("# %s\n\n%s\n\nSee: %s", pkg, summary, url),
		Version:   version,
		SourceURL: url,
		Kind:      KindRegistrySummary,
	}
}

func orUnknown(version string) string {
	if version == "" {
		return "unknown"
	}
	return version
}
