// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains low-level API clients for fetching package metadata
// and documentation sources. Each upstream has its own subpackage:
//
//   - [pypi]: Python Package Index
//   - [npm]: npm registry
//   - [github]: raw README retrieval from GitHub repositories
//
// # Client Pattern
//
// Registry clients follow a consistent pattern:
//
//	client := pypi.NewClient(backend, 24*time.Hour)  // cache backend + TTL
//	pkg, err := client.FetchPackage(ctx, "fastapi", false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry for transient failures
//   - Response caching through a pluggable [cache.Cache] backend
//   - API-specific parsing and normalization
//
// # Shared Infrastructure
//
// The [Client] type provides the shared HTTP layer used by the registry
// clients: namespaced cache keys, JSON decoding, default headers, and
// 404/5xx classification into [ErrNotFound] and [ErrNetwork]. The github
// subpackage fetches raw file content and deliberately skips the response
// cache; fetched READMEs land in the output directory instead.
//
// # Adding a New Registry
//
// To add support for a new package registry:
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with a FetchPackage method
//  4. Use [NewClient] for HTTP with caching
//  5. Wire into the readme resolver as a new ecosystem chain
//
// [pypi]: github.com/matzehuels/readmerator/pkg/integrations/pypi
// [npm]: github.com/matzehuels/readmerator/pkg/integrations/npm
// [github]: github.com/matzehuels/readmerator/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/readmerator/pkg/cache.Cache
package integrations
