// Package pypi provides an HTTP client for the Python Package Index API.
//
// # Overview
//
// This package fetches package metadata from PyPI (https://pypi.org), the
// official repository for Python packages. The metadata feeds README
// resolution: the long description is usually the package's README as
// uploaded, and project_urls point at the source repository when it isn't.
//
// # Usage
//
//	client := pypi.NewClient(backend, 24*time.Hour)  // cache backend + TTL
//
//	pkg, err := client.FetchPackage(ctx, "fastapi", false)  // false = use cache
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(pkg.Name, pkg.Version)
//	fmt.Println(len(pkg.Description), "bytes of long description")
//
// # PackageInfo
//
// [FetchPackage] returns a [PackageInfo] containing:
//
//   - Name, Version: package identity
//   - Description: the long description (usually the README)
//   - Summary: one-line abstract, used for synthesized fallbacks
//   - ProjectURLs, HomePage: links for repository README fallback
//
// # Caching
//
// Responses are cached to reduce load on PyPI and speed up repeated runs.
// The cache TTL is set when creating the client. Pass refresh=true to
// [FetchPackage] to bypass the cache.
//
// Package names are normalized following PEP 503.
package pypi
