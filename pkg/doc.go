// Package pkg provides the core libraries for readmerator, the dependency
// README fetcher.
//
// # Overview
//
// Readmerator turns a project's dependency manifests into a folder of
// offline documentation: one markdown file per dependency, grouped by
// ecosystem. The pkg directory is organized into five areas:
//
//  1. [manifest] - Manifest parsers (requirements.txt, pyproject.toml, package.json, ...)
//  2. [scan] - Project tree walking and dependency collection
//  3. [integrations] - External API clients (PyPI, npm, GitHub)
//  4. [readme] - Resolution chains, fetch orchestration, and the output store
//  5. [cache] - Pluggable HTTP response cache (file, Redis, null)
//
// # Architecture
//
// The typical data flow:
//
//	Project Directory
//	         ↓
//	    [scan] package (walk tree, parse manifests)
//	         ↓
//	    [readme] resolver ([integrations] clients + [cache])
//	         ↓
//	    [readme] store
//	         ↓
//	    {outputDir}/{ecosystem}/{package}.md
//
// # Quick Start
//
// Scan a project and fetch documentation for everything it declares:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/readmerator/pkg/readme"
//	    "github.com/matzehuels/readmerator/pkg/scan"
//	)
//
//	// 1. Collect declared dependencies
//	packages, _ := scan.Scan(".", scan.Options{Recursive: true, MaxDepth: -1})
//
//	// 2. Fetch their docs concurrently
//	fetcher := &readme.Fetcher{
//	    Resolver: readme.NewResolver(readme.Options{}),
//	    Store:    readme.NewStore(".ai-docs"),
//	}
//	results := fetcher.FetchAll(context.Background(), packages)
//
//	// 3. Inspect the outcome
//	fmt.Printf("%d fetched, %d failed\n", results.Succeeded(), results.Failed())
//
// # Main Packages
//
// [manifest] - Format registry plus the python and npm parser subpackages.
// Parsers are total functions: malformed or missing manifests yield empty
// results, never errors.
//
// [scan] - Recursive directory walking with a fixed exclusion set
// (virtualenvs, node_modules, build output). Unions manifest results per
// ecosystem.
//
// [integrations] - Registry clients with retry, caching, and error
// classification. The github subpackage probes raw.githubusercontent.com
// without authentication.
//
// [readme] - Per-ecosystem resolution chains with graceful degradation,
// the concurrent fetch orchestrator, and the markdown store with its
// metadata headers.
//
// [cache] - Content-addressed response cache with file, Redis, and null
// backends.
//
// [manifest]: github.com/matzehuels/readmerator/pkg/manifest
// [scan]: github.com/matzehuels/readmerator/pkg/scan
// [integrations]: github.com/matzehuels/readmerator/pkg/integrations
// [readme]: github.com/matzehuels/readmerator/pkg/readme
// [cache]: github.com/matzehuels/readmerator/pkg/cache
package pkg
