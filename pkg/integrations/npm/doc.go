// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches package metadata from the npm registry
// (https://registry.npmjs.org). Unlike PyPI, the registry serves the
// package README directly as a top-level field, so README resolution for
// npm rarely needs to leave the registry.
//
// # Usage
//
//	client := npm.NewClient(backend, 24*time.Hour)
//
//	pkg, err := client.FetchPackage(ctx, "express", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(pkg.Name, pkg.Version)
//	fmt.Println(len(pkg.Readme), "bytes of readme")
//
// # PackageInfo
//
// [FetchPackage] returns a [PackageInfo] containing:
//
//   - Name, Version: package identity (version from dist-tags "latest")
//   - Readme: the package README as served by the registry
//   - Description: one-line description, used for synthesized fallbacks
//   - HomePage: homepage URL
//
// Scoped names ("@types/node") are passed through unchanged.
//
// # Caching
//
// Responses are cached to reduce load on the registry. The cache TTL is set
// when creating the client. Pass refresh=true to bypass the cache.
package npm
