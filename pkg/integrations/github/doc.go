// Package github retrieves raw README content from GitHub repositories.
//
// # Overview
//
// When a registry's own metadata carries no usable long description, the
// README usually lives in the package's source repository. This package
// fetches it straight from raw.githubusercontent.com by probing the
// repository's well-known branches (main, then master).
//
// # Usage
//
//	owner, repo, ok := github.ParseRepoURL("https://github.com/pallets/flask")
//	if !ok {
//	    return
//	}
//
//	client := github.NewClient()
//	readme, err := client.FetchReadme(ctx, owner, repo)
//
// # No authentication
//
// raw.githubusercontent.com serves public repository files without
// authentication or meaningful rate limits, so this client carries no
// token handling. Repositories that don't exist, are private, or keep
// their README elsewhere surface as [integrations.ErrNotFound].
package github
