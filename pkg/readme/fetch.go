package readme

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// Results records, per ecosystem, whether each package's documentation was
// fetched and written.
type Results map[manifest.Ecosystem]map[string]bool

// Succeeded counts packages whose documentation was written.
func (r Results) Succeeded() int {
	n := 0
	for _, pkgs := range r {
		for _, ok := range pkgs {
			if ok {
				n++
			}
		}
	}
	return n
}

// Failed counts packages that yielded no documentation file.
func (r Results) Failed() int {
	n := 0
	for _, pkgs := range r {
		for _, ok := range pkgs {
			if !ok {
				n++
			}
		}
	}
	return n
}

// FailedNames returns the sorted names of failed packages in one ecosystem.
func (r Results) FailedNames(eco manifest.Ecosystem) []string {
	var names []string
	for name, ok := range r[eco] {
		if !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Fetcher fans documentation resolution out across every package of a scan
// and writes each artifact as soon as it resolves.
type Fetcher struct {
	Resolver *Resolver
	Store    *Store

	// Logger receives per-package progress lines; nil disables tracing.
	Logger func(format string, args ...any)
}

// FetchAll resolves every package concurrently and writes the artifacts.
//
// One goroutine per package: the work is I/O-bound and the registry
// clients share pooled HTTP connections, so fan-out is bounded by the
// package count, not a worker pool. A failed package never aborts the
// rest; cancellation makes the in-flight fetches fail fast, and every
// task still reports its outcome.
func (f *Fetcher) FetchAll(ctx context.Context, packages map[manifest.Ecosystem][]string) Results {
	logf := f.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}

	results := make(Results, len(packages))
	for eco, names := range packages {
		results[eco] = make(map[string]bool, len(names))
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for eco, names := range packages {
		for _, name := range names {
			wg.Add(1)
			go func(eco manifest.Ecosystem, name string) {
				defer wg.Done()
				ok := f.fetchOne(ctx, eco, name, logf)
				mu.Lock()
				results[eco][name] = ok
				mu.Unlock()
			}(eco, name)
		}
	}
	wg.Wait()
	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, eco manifest.Ecosystem, name string, logf func(string, ...any)) bool {
	logf("fetching %s/%s", eco, name)
	art, err := f.Resolver.Resolve(ctx, eco, name)
	if err != nil {
		logf("failed %s/%s: %v", eco, name, err)
		return false
	}
	path, err := f.Store.Write(eco, name, art)
	if err != nil {
		logf("failed %s/%s: %v", eco, name, err)
		return false
	}
	logf("saved %s (%d bytes, %s)", path, len(art.Content), art.Kind)
	return true
}
